// Package decode provides stock Decoders for pluck's GetStrategy: the
// fixed-width unsigned integers in both byte orders, raw and ASCII string
// runs, and an adapter for arbitrary decode functions.
package decode

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/zostay/pluck"
)

// Fixed-width integer decoders. Each consumes exactly the type's width in
// bytes per value.
var (
	U8    pluck.Decoder[uint8]  = u8{}
	U16BE pluck.Decoder[uint16] = u16{binary.BigEndian}
	U16LE pluck.Decoder[uint16] = u16{binary.LittleEndian}
	U32BE pluck.Decoder[uint32] = u32{binary.BigEndian}
	U32LE pluck.Decoder[uint32] = u32{binary.LittleEndian}
	U64BE pluck.Decoder[uint64] = u64{binary.BigEndian}
	U64LE pluck.Decoder[uint64] = u64{binary.LittleEndian}
)

type u8 struct{}

func (u8) Size() int { return 1 }

func (u8) Decode(run []byte) (uint8, bool) {
	if len(run) != 1 {
		return 0, false
	}
	return run[0], true
}

type u16 struct{ order binary.ByteOrder }

func (u16) Size() int { return 2 }

func (d u16) Decode(run []byte) (uint16, bool) {
	if len(run) != 2 {
		return 0, false
	}
	return d.order.Uint16(run), true
}

type u32 struct{ order binary.ByteOrder }

func (u32) Size() int { return 4 }

func (d u32) Decode(run []byte) (uint32, bool) {
	if len(run) != 4 {
		return 0, false
	}
	return d.order.Uint32(run), true
}

type u64 struct{ order binary.ByteOrder }

func (u64) Size() int { return 8 }

func (d u64) Decode(run []byte) (uint64, bool) {
	if len(run) != 8 {
		return 0, false
	}
	return d.order.Uint64(run), true
}

// Raw returns a Decoder that yields each size-byte run as a string,
// verbatim.
func Raw(size int) pluck.Decoder[string] {
	return Of(size, func(run []byte) (string, bool) {
		return string(run), true
	})
}

// ASCII returns a Decoder that yields each size-byte run as a string,
// rejecting runs containing bytes outside the 7-bit ASCII range.
func ASCII(size int) pluck.Decoder[string] {
	return Of(size, func(run []byte) (string, bool) {
		for _, b := range run {
			if b >= utf8.RuneSelf {
				return "", false
			}
		}
		return string(run), true
	})
}

// Of adapts a run size and a decode function into a Decoder.
func Of[V any](size int, decode func(run []byte) (V, bool)) pluck.Decoder[V] {
	return &fn[V]{size: size, decode: decode}
}

type fn[V any] struct {
	size   int
	decode func([]byte) (V, bool)
}

func (f *fn[V]) Size() int { return f.size }

func (f *fn[V]) Decode(run []byte) (V, bool) { return f.decode(run) }
