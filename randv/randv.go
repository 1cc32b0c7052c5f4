/*
Package randv provides pluggable uniform random byte sources and
rejection-sampled unbiased integer draws.
*/
package randv

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand"

	"golang.org/x/crypto/chacha20"
)

// Source fills byte slices with uniformly distributed random bytes.
type Source interface {
	Fill(p []byte)
}

// FillFunc adapts a function to the Source interface.
type FillFunc func(p []byte)

// Fill calls f.
func (f FillFunc) Fill(p []byte) {
	f(p)
}

// Crypto returns a source backed by the platform CSPRNG. It panics when
// the platform source fails.
func Crypto() Source {
	return FillFunc(func(p []byte) {
		if _, err := io.ReadFull(rand.Reader, p); err != nil {
			panic("randv: platform random source failed: " + err.Error())
		}
	})
}

// NewChaCha returns a deterministic source producing the ChaCha20
// keystream for the given seed.
func NewChaCha(seed [32]byte) Source {
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		panic("randv: " + err.Error())
	}
	return &chachaSource{c: c}
}

type chachaSource struct {
	c *chacha20.Cipher
}

func (s *chachaSource) Fill(p []byte) {
	for i := range p {
		p[i] = 0
	}
	s.c.XORKeyStream(p, p)
}

// NewPseudo returns a seeded deterministic source for reproducible
// tests and simulations.
func NewPseudo(seed int64) Source {
	r := mrand.New(mrand.NewSource(seed))
	return FillFunc(func(p []byte) {
		r.Read(p)
	})
}

// Uint32 draws one raw 32-bit value from s.
func Uint32(s Source) uint32 {
	var b [4]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint32n draws a uniform value in [0, n) without modulo bias. Raw
// draws below the threshold (-n mod n) are rejected before reduction so
// that every residue keeps an equal share of the 32-bit range.
func Uint32n(s Source, n uint32) uint32 {
	if n == 0 {
		panic("randv: zero range")
	}

	thresh := -n % n
	v := Uint32(s)
	for v < thresh {
		v = Uint32(s)
	}

	return v % n
}
