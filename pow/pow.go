// Package pow searches for a 4-byte prefix whose SHA-256 digest, taken over
// the prefix followed by a fixed 64-byte input, ends with the marker 0xcafe.
package pow

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"
)

const (
	InputSize  = 64
	PrefixSize = 4
	DigestSize = sha256.Size
)

var marker = []byte{0xca, 0xfe}

var (
	ErrInvalidEncoding   = errors.New("unable to decode hexadecimal encoded input")
	ErrInvalidLength     = errors.New("hex-encoded input should be 64 bytes long")
	ErrPrefixNotFound    = errors.New("prefix matching given predicate not found")
	ErrPredicateMismatch = errors.New("digest does not end with marker")
)

type Input [InputSize]byte

func NewInput(b []byte) (*Input, error) {
	if len(b) != InputSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(b))
	}
	in := &Input{}
	copy(in[:], b)
	return in, nil
}

func DecodeInput(s string) (*Input, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return NewInput(b)
}

func (in *Input) String() string {
	return hex.EncodeToString(in[:])
}

// Prefix is the big-endian encoding of a candidate counter.
type Prefix [PrefixSize]byte

func PrefixOf(v uint32) Prefix {
	var p Prefix
	binary.BigEndian.PutUint32(p[:], v)
	return p
}

func ParsePrefix(s string) (Prefix, error) {
	var p Prefix
	b, err := hex.DecodeString(s)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if len(b) != PrefixSize {
		return p, fmt.Errorf("%w: prefix is %d bytes, want %d", ErrInvalidLength, len(b), PrefixSize)
	}
	copy(p[:], b)
	return p, nil
}

func (p Prefix) Uint32() uint32 {
	return binary.BigEndian.Uint32(p[:])
}

func (p Prefix) String() string {
	return hex.EncodeToString(p[:])
}

type Digest [DigestSize]byte

// HasMarker reports whether the digest ends with 0xca 0xfe.
func (d Digest) HasMarker() bool {
	return bytes.HasSuffix(d[:], marker)
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Match is the first attempt in enumeration order whose digest has the marker.
type Match struct {
	Digest Digest
	Prefix Prefix
}

// String renders the digest and the prefix on two lines.
func (m *Match) String() string {
	return fmt.Sprintf("%s\n%s", m.Digest, m.Prefix)
}

// Sum computes the digest of p followed by in, without any state reuse.
func Sum(in *Input, p Prefix) Digest {
	msg := make([]byte, 0, PrefixSize+InputSize)
	msg = append(msg, p[:]...)
	msg = append(msg, in[:]...)
	return sha256.Sum256(msg)
}

// Check verifies a single prefix against in.
func Check(in *Input, p Prefix) (*Match, error) {
	d := Sum(in, p)
	if !d.HasMarker() {
		return nil, fmt.Errorf("prefix %s: %w", p, ErrPredicateMismatch)
	}
	return &Match{Digest: d, Prefix: p}, nil
}
