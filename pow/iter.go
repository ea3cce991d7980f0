package pow

import (
	"hash"

	"github.com/minio/sha256-simd"
)

// spaceEnd is the exclusive bound of the candidate space.
const spaceEnd = uint64(1) << 32

// Attempt is one candidate prefix together with its digest.
type Attempt struct {
	Digest Digest
	Prefix Prefix
}

// Iterator walks candidate prefixes in increasing order, computing one digest
// per call to Next. It is finite and cannot be rewound.
type Iterator struct {
	in     *Input
	start  uint64
	next   uint64
	end    uint64
	hasher hash.Hash
	sum    [DigestSize]byte
}

func NewIterator(in *Input) *Iterator {
	return newRangeIterator(in, 0, spaceEnd)
}

// newRangeIterator covers [start, end). end is clamped to the candidate space.
func newRangeIterator(in *Input, start uint32, end uint64) *Iterator {
	if end > spaceEnd {
		end = spaceEnd
	}
	return &Iterator{
		in:     in,
		start:  uint64(start),
		next:   uint64(start),
		end:    end,
		hasher: sha256.New(),
	}
}

func (it *Iterator) Next() (Attempt, bool) {
	if it.next >= it.end {
		return Attempt{}, false
	}
	p := PrefixOf(uint32(it.next))
	it.next++

	it.hasher.Write(p[:])
	it.hasher.Write(it.in[:])
	it.hasher.Sum(it.sum[:0])
	it.hasher.Reset()

	return Attempt{Digest: it.sum, Prefix: p}, true
}

// Tried returns how many candidates the iterator has hashed so far.
func (it *Iterator) Tried() uint64 {
	return it.next - it.start
}
