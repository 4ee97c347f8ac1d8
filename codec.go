package hashdict

import (
	"encoding/binary"
	"math"
)

// ValueCodec is a fixed-width binary encoding for dictionary values. Encode
// and Decode always operate on exactly Size() bytes.
type ValueCodec[V any] interface {
	Size() int
	Encode(dst []byte, v V)
	Decode(src []byte) V
}

type Int64Codec struct{}

func (Int64Codec) Size() int                  { return 8 }
func (Int64Codec) Encode(dst []byte, v int64) { binary.LittleEndian.PutUint64(dst, uint64(v)) }
func (Int64Codec) Decode(src []byte) int64    { return int64(binary.LittleEndian.Uint64(src)) }

type Int32Codec struct{}

func (Int32Codec) Size() int                  { return 4 }
func (Int32Codec) Encode(dst []byte, v int32) { binary.LittleEndian.PutUint32(dst, uint32(v)) }
func (Int32Codec) Decode(src []byte) int32    { return int32(binary.LittleEndian.Uint32(src)) }

type Uint64Codec struct{}

func (Uint64Codec) Size() int                   { return 8 }
func (Uint64Codec) Encode(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }
func (Uint64Codec) Decode(src []byte) uint64    { return binary.LittleEndian.Uint64(src) }

type Uint32Codec struct{}

func (Uint32Codec) Size() int                   { return 4 }
func (Uint32Codec) Encode(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func (Uint32Codec) Decode(src []byte) uint32    { return binary.LittleEndian.Uint32(src) }

type Float64Codec struct{}

func (Float64Codec) Size() int { return 8 }
func (Float64Codec) Encode(dst []byte, v float64) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}
func (Float64Codec) Decode(src []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src))
}

type Float32Codec struct{}

func (Float32Codec) Size() int { return 4 }
func (Float32Codec) Encode(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}
func (Float32Codec) Decode(src []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src))
}
