package mp_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/optwell/mathprog/mp"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("FromBytes(ToBytes(m)) is equivalent to m", prop.ForAll(
		func(seed int64, nVars, nCons uint8) bool {
			r := rand.New(rand.NewSource(seed))
			m := randomBuilder(t, r, 1+int(nVars%10), int(nCons%6)).Build()

			data, err := m.ToBytes()
			if err != nil {
				return false
			}
			decoded := new(mp.Immutable)
			n, err := decoded.FromBytes(data)
			if err != nil || n != len(data) {
				return false
			}
			return mp.Equal(m, decoded)
		},
		gen.Int64(),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSnapshotWriterToReaderFrom(t *testing.T) {
	assert := require.New(t)

	m := randomBuilder(t, rand.New(rand.NewSource(99)), 6, 4).Build()

	var buf bytes.Buffer
	written, err := m.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), written)

	decoded := new(mp.Immutable)
	read, err := decoded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)
	assert.True(mp.Equal(m, decoded))
}

func TestSnapshotEmptyProgram(t *testing.T) {
	assert := require.New(t)

	m := mp.NewBuilder().Build()
	data, err := m.ToBytes()
	assert.NoError(err)

	decoded := new(mp.Immutable)
	_, err = decoded.FromBytes(data)
	assert.NoError(err)
	assert.True(mp.Equal(m, decoded))
	assert.True(decoded.Objective().IsZero())
}

func TestSnapshotFromBytesRejectsTruncated(t *testing.T) {
	assert := require.New(t)

	m := randomBuilder(t, rand.New(rand.NewSource(3)), 3, 1).Build()
	data, err := m.ToBytes()
	assert.NoError(err)

	decoded := new(mp.Immutable)
	_, err = decoded.FromBytes(data[:len(data)-1])
	assert.Error(err)

	_, err = decoded.FromBytes(data[:10])
	assert.Error(err)
}
