package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestSnapshotRoundTrip(t *testing.T) {
	in := &Snapshot{
		EditOn:   true,
		Selected: 4,
		Shapes: []Shape{
			{Visible: true, Grid: true, LightF: 1, DiffuseF: 1, TextureF: -1, Start: [3]float32{1, -2, 3.5}, Angle: [3]float32{0, 45, 0}, Asset: 2, Radius: 0.75},
			{Blend: true},
		},
	}
	out, err := Decode(Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEmptySnapshot(t *testing.T) {
	out, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, &Snapshot{}, out)
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b := Encode(&Snapshot{Selected: 2})
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("later"))
	out, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, int32(2), out.Selected)
}

func TestTruncated(t *testing.T) {
	b := Encode(&Snapshot{Shapes: []Shape{{Visible: true, Asset: 3}}})
	_, err := Decode(b[:len(b)-2])
	assert.True(t, errors.Is(err, ErrTruncated))
}
