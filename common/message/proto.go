// Package message encodes the scene snapshot in protobuf wire format so it
// stays readable by other tools without generated code.
//
//	message Snapshot {
//	  bool   edit_on  = 1;
//	  int32  selected = 2;
//	  repeated Shape shapes = 3;
//	}
//	message Shape {
//	  bool  visible = 1;  bool blend = 2;  bool grid = 3;
//	  int32 light_f = 4;  int32 diffuse_f = 5;  int32 texture_f = 6;
//	  repeated float start = 7 [packed];  repeated float angle = 8 [packed];
//	  int32 asset = 9;    float radius = 10;
//	}
package message

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrTruncated = errors.New("message: truncated snapshot")

type Shape struct {
	Visible  bool
	Blend    bool
	Grid     bool
	LightF   int32
	DiffuseF int32
	TextureF int32
	Start    [3]float32
	Angle    [3]float32
	Asset    int32
	Radius   float32
}

type Snapshot struct {
	EditOn   bool
	Selected int32
	Shapes   []Shape
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendFloats(b []byte, num protowire.Number, v []float32) []byte {
	packed := make([]byte, 0, len(v)*4)
	for _, f := range v {
		packed = protowire.AppendFixed32(packed, math.Float32bits(f))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func (s *Shape) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, s.Visible)
	b = appendBool(b, 2, s.Blend)
	b = appendBool(b, 3, s.Grid)
	b = appendInt32(b, 4, s.LightF)
	b = appendInt32(b, 5, s.DiffuseF)
	b = appendInt32(b, 6, s.TextureF)
	b = appendFloats(b, 7, s.Start[:])
	b = appendFloats(b, 8, s.Angle[:])
	b = appendInt32(b, 9, s.Asset)
	if s.Radius != 0 {
		b = protowire.AppendTag(b, 10, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(s.Radius))
	}
	return b
}

func Encode(snap *Snapshot) []byte {
	var b []byte
	b = appendBool(b, 1, snap.EditOn)
	b = appendInt32(b, 2, snap.Selected)
	for i := range snap.Shapes {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, snap.Shapes[i].marshal())
	}
	return b
}

// fields walks every field of a message, skipping unknown ones.
func fields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func consumeInt(typ protowire.Type, b []byte) (int64, int) {
	if typ != protowire.VarintType {
		return 0, 0
	}
	v, n := protowire.ConsumeVarint(b)
	return int64(v), n
}

func consumeFloats(typ protowire.Type, b []byte, dst []float32) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	packed, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	for i := 0; len(packed) > 0; i++ {
		v, m := protowire.ConsumeFixed32(packed)
		if m < 0 {
			return m, nil
		}
		if i < len(dst) {
			dst[i] = math.Float32frombits(v)
		}
		packed = packed[m:]
	}
	return n, nil
}

func (s *Shape) unmarshal(b []byte) error {
	return fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3, 4, 5, 6, 9:
			v, n := consumeInt(typ, b)
			switch num {
			case 1:
				s.Visible = v != 0
			case 2:
				s.Blend = v != 0
			case 3:
				s.Grid = v != 0
			case 4:
				s.LightF = int32(v)
			case 5:
				s.DiffuseF = int32(v)
			case 6:
				s.TextureF = int32(v)
			case 9:
				s.Asset = int32(v)
			}
			return n, nil
		case 7:
			return consumeFloats(typ, b, s.Start[:])
		case 8:
			return consumeFloats(typ, b, s.Angle[:])
		case 10:
			if typ != protowire.Fixed32Type {
				return 0, nil
			}
			v, n := protowire.ConsumeFixed32(b)
			s.Radius = math.Float32frombits(v)
			return n, nil
		}
		return 0, nil
	})
}

func Decode(data []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	err := fields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := consumeInt(typ, b)
			snap.EditOn = v != 0
			return n, nil
		case 2:
			v, n := consumeInt(typ, b)
			snap.Selected = int32(v)
			return n, nil
		case 3:
			if typ != protowire.BytesType {
				return 0, nil
			}
			msg, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var s Shape
			if err := s.unmarshal(msg); err != nil {
				return 0, err
			}
			snap.Shapes = append(snap.Shapes, s)
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
