package rw

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// ReaderWriter packs vertex attributes and indices into the little-endian
// byte layout GL buffer uploads expect, and reads them back.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
}

func NewBufferWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewBufferReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Reset empties the buffer but keeps its storage for the next frame.
func (w *ReaderWriter) Reset() {
	w.rw.Reset()
}

// Bytes returns the packed data. It is only valid until the next write or
// Reset.
func (w *ReaderWriter) Bytes() []byte {
	return w.rw.Bytes()
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	n, err := w.rw.Read(w.dataBuf[:2])
	if err != nil {
		panic(err)
	}
	if n < 2 {
		panic(io.ErrUnexpectedEOF)
	}
	return w.order.Uint16(w.dataBuf[:2])
}

func (w *ReaderWriter) ReadUInt16s(value []uint16) {
	for i := range value {
		value[i] = w.ReadUInt16()
	}
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	n, err := w.rw.Read(w.dataBuf[:4])
	if err != nil {
		panic(err)
	}
	if n < 4 {
		panic(io.ErrUnexpectedEOF)
	}
	return w.order.Uint32(w.dataBuf[:4])
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt16s(value []uint16) {
	w.rw.Grow(len(value) * 2)
	for _, tmp := range value {
		w.WriteUInt16(tmp)
	}
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.order.PutUint32(w.dataBuf, math.Float32bits(v))
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32s(value []float32) {
	w.rw.Grow(len(value) * 4)
	for _, tmp := range value {
		w.WriteFloat32(tmp)
	}
}
