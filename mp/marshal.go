package mp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"
)

// Snapshot serialization. The byte layout is a fixed-size header holding
// section lengths, followed by three CBOR sections: variables, constraints
// and body (name + objective). Terms are stored as (coefficient, variable
// index) pairs against the variable section, so variable data is written once.

const headerLen = 3 * 8

type header struct {
	variablesLen   uint64
	constraintsLen uint64
	bodyLen        uint64
}

func (h header) toBytes() []byte {
	buf := make([]byte, 0, headerLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.variablesLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.constraintsLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.bodyLen)
	return buf
}

func (h *header) fromBytes(data []byte) {
	h.variablesLen = binary.LittleEndian.Uint64(data[0:8])
	h.constraintsLen = binary.LittleEndian.Uint64(data[8:16])
	h.bodyLen = binary.LittleEndian.Uint64(data[16:24])
}

type serializedVariable struct {
	Description string  `cbor:"1,keyasint"`
	Kind        uint8   `cbor:"2,keyasint"`
	Lower       float64 `cbor:"3,keyasint"`
	Upper       float64 `cbor:"4,keyasint"`
}

type serializedTerm struct {
	Coeff float64 `cbor:"1,keyasint"`
	VID   uint32  `cbor:"2,keyasint"`
}

type serializedConstraint struct {
	Description string           `cbor:"1,keyasint"`
	LHS         []serializedTerm `cbor:"2,keyasint"`
	Relation    uint8            `cbor:"3,keyasint"`
	RHS         float64          `cbor:"4,keyasint"`
}

type serializedBody struct {
	Name      string           `cbor:"1,keyasint"`
	Sense     uint8            `cbor:"2,keyasint"`
	NonZero   bool             `cbor:"3,keyasint"`
	Objective []serializedTerm `cbor:"4,keyasint"`
}

func encodeSection(v any) ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSection(data []byte, v any) error {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}.DecMode()
	if err != nil {
		return err
	}
	return dm.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (m *Immutable) serializeTerms(s SumTerms) ([]serializedTerm, error) {
	res := make([]serializedTerm, len(s))
	for i, t := range s {
		vid, ok := m.byDescription[t.Var.Description()]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, t.Var.Description())
		}
		res[i] = serializedTerm{Coeff: t.Coeff, VID: uint32(vid)}
	}
	return res, nil
}

// ToBytes serializes the snapshot to a byte slice.
func (m *Immutable) ToBytes() ([]byte, error) {
	// the three sections are independent; encode them concurrently
	var variables, constraints, body []byte
	var g errgroup.Group
	g.Go(func() error {
		vars := make([]serializedVariable, len(m.variables))
		for i, v := range m.variables {
			vars[i] = serializedVariable{
				Description: v.description,
				Kind:        uint8(v.kind),
				Lower:       v.lower,
				Upper:       v.upper,
			}
		}
		var err error
		variables, err = encodeSection(vars)
		return err
	})
	g.Go(func() error {
		cons := make([]serializedConstraint, len(m.constraints))
		for i, c := range m.constraints {
			lhs, err := m.serializeTerms(c.lhs)
			if err != nil {
				return err
			}
			cons[i] = serializedConstraint{
				Description: c.description,
				LHS:         lhs,
				Relation:    uint8(c.rel),
				RHS:         c.rhs,
			}
		}
		var err error
		constraints, err = encodeSection(cons)
		return err
	})
	g.Go(func() error {
		b := serializedBody{Name: m.name, Sense: uint8(m.objective.sense), NonZero: m.objective.nonZero}
		if m.objective.nonZero {
			terms, err := m.serializeTerms(m.objective.terms)
			if err != nil {
				return err
			}
			b.Objective = terms
		}
		var err error
		body, err = encodeSection(b)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h := header{
		variablesLen:   uint64(len(variables)),
		constraintsLen: uint64(len(constraints)),
		bodyLen:        uint64(len(body)),
	}

	buf := h.toBytes()
	buf = append(buf, variables...)
	buf = append(buf, constraints...)
	buf = append(buf, body...)
	return buf, nil
}

// FromBytes deserializes a snapshot previously produced by ToBytes and
// returns the number of bytes read.
func (m *Immutable) FromBytes(data []byte) (int, error) {
	if len(data) < headerLen {
		return 0, errors.New("invalid data length")
	}
	h := new(header)
	h.fromBytes(data)

	total := headerLen + int(h.variablesLen) + int(h.constraintsLen) + int(h.bodyLen)
	if len(data) < total {
		return 0, errors.New("invalid data length")
	}

	var vars []serializedVariable
	if err := decodeSection(data[headerLen:headerLen+int(h.variablesLen)], &vars); err != nil {
		return 0, err
	}
	m.variables = make([]Variable, len(vars))
	m.byDescription = make(map[string]int, len(vars))
	for i, sv := range vars {
		v, err := New(sv.Description, Kind(sv.Kind), sv.Lower, sv.Upper)
		if err != nil {
			return 0, err
		}
		if _, dup := m.byDescription[v.description]; dup {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateDescription, v.description)
		}
		m.variables[i] = v
		m.byDescription[v.description] = i
	}

	deserializeTerms := func(ts []serializedTerm) (SumTerms, error) {
		res := make(SumTerms, len(ts))
		for i, t := range ts {
			if int(t.VID) >= len(m.variables) {
				return nil, fmt.Errorf("%w: variable index %d out of range", ErrUnknownVariable, t.VID)
			}
			res[i] = Term{Coeff: t.Coeff, Var: m.variables[t.VID]}
		}
		return res, nil
	}

	cStart := headerLen + int(h.variablesLen)
	var cons []serializedConstraint
	if err := decodeSection(data[cStart:cStart+int(h.constraintsLen)], &cons); err != nil {
		return 0, err
	}
	m.constraints = make([]Constraint, len(cons))
	for i, sc := range cons {
		lhs, err := deserializeTerms(sc.LHS)
		if err != nil {
			return 0, err
		}
		m.constraints[i] = Constraint{
			description: sc.Description,
			lhs:         lhs,
			rel:         Relation(sc.Relation),
			rhs:         sc.RHS,
		}
	}

	bStart := cStart + int(h.constraintsLen)
	var body serializedBody
	if err := decodeSection(data[bStart:bStart+int(h.bodyLen)], &body); err != nil {
		return 0, err
	}
	m.name = body.Name
	if body.NonZero {
		terms, err := deserializeTerms(body.Objective)
		if err != nil {
			return 0, err
		}
		m.objective = Objective{terms: terms, sense: Sense(body.Sense), nonZero: true}
	} else {
		m.objective = Objective{}
	}

	return total, nil
}

// WriteTo implements io.WriterTo.
func (m *Immutable) WriteTo(w io.Writer) (int64, error) {
	data, err := m.ToBytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom.
func (m *Immutable) ReadFrom(r io.Reader) (int64, error) {
	var hdr [headerLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, err
	}
	h := new(header)
	h.fromBytes(hdr[:])

	data := make([]byte, headerLen+h.variablesLen+h.constraintsLen+h.bodyLen)
	copy(data, hdr[:])
	if _, err := io.ReadFull(r, data[headerLen:]); err != nil {
		return int64(headerLen), err
	}
	n, err := m.FromBytes(data)
	return int64(n), err
}
