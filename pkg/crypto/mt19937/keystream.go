package mt19937

import (
	"crypto/cipher"
	"encoding/binary"
)

const keyBlockSize = 4096

// KeyBlock is a fixed 4096-byte XOR key expanded from a 32-bit seed.
// It provides obfuscation only; anyone who sees 2496 key bytes can rebuild
// the generator.
type KeyBlock struct {
	seed uint32
	data [keyBlockSize]byte
}

func NewKeyBlock(seed uint32) *KeyBlock {
	b := &KeyBlock{seed: seed}
	g := New(seed)
	for i := 0; i < keyBlockSize>>2; i++ {
		binary.LittleEndian.PutUint32(b.data[i<<2:], g.Uint32())
	}
	return b
}

func (b *KeyBlock) Key() []byte {
	return b.data[:]
}

func (b *KeyBlock) Seed() uint32 {
	return b.seed
}

// Xor applies the key in place, repeating it every 4096 bytes.
func (b *KeyBlock) Xor(data []byte) {
	for i := 0; i < len(data); i++ {
		data[i] ^= b.data[i%keyBlockSize]
	}
}

// Stream is a cipher.Stream over the little-endian byte sequence of the
// generator's outputs. Like KeyBlock it is not a secure cipher.
type Stream struct {
	g    *Generator
	buf  [4]byte
	left int // unused bytes at the tail of buf
}

var _ cipher.Stream = (*Stream)(nil)

func NewStream(seed uint32) *Stream {
	return &Stream{g: New(seed)}
}

func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("mt19937: output smaller than input")
	}
	for i := range src {
		if s.left == 0 {
			binary.LittleEndian.PutUint32(s.buf[:], s.g.Uint32())
			s.left = len(s.buf)
		}
		dst[i] = src[i] ^ s.buf[len(s.buf)-s.left]
		s.left--
	}
}
