package table

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a 32-byte BLAKE2b digest of the table's structure
// and contents. Two tables have the same fingerprint exactly when they are
// [Equal]: iteration order, list/hash layout and the Go kind of integral
// numbers do not affect the digest. A nil table fingerprints like an
// empty one.
//
// Fingerprints are stable within a process run and across runs, so they
// are usable as cache keys and change detectors for configuration-style
// data.
func (t *Table) Fingerprint() [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Unkeyed New256 cannot fail.
		panic("table: blake2b init: " + err.Error())
	}
	hashValue(h, t)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Canonical encoding: every node is a tag byte followed by a fixed-width
// or length-prefixed payload, so no two distinct structures share an
// encoding. Integral numbers of any kind collapse to the int64 form,
// mirroring [Equal].
const (
	fpTable  = 'T'
	fpEnd    = 'E'
	fpKey    = 'k'
	fpVal    = 'v'
	fpInt    = 'i'
	fpFloat  = 'f'
	fpString = 's'
	fpBool   = 'b'
	fpBytes  = 'y'
	fpOpaque = 'o'
)

func hashValue(h hash.Hash, v any) {
	if sub, ok := v.(*Table); ok {
		h.Write([]byte{fpTable})
		for _, k := range sub.SortedKeys() {
			h.Write([]byte{fpKey})
			hashScalar(h, k)
			h.Write([]byte{fpVal})
			hashValue(h, sub.Get(k))
		}
		h.Write([]byte{fpEnd})
		return
	}
	hashScalar(h, v)
}

func hashScalar(h hash.Hash, v any) {
	if i, f, isInt, ok := numValue(v); ok {
		if isInt {
			h.Write([]byte{fpInt})
			writeUint64(h, uint64(i))
			return
		}
		h.Write([]byte{fpFloat})
		writeUint64(h, math.Float64bits(f))
		return
	}
	switch s := v.(type) {
	case string:
		h.Write([]byte{fpString})
		writeUint64(h, uint64(len(s)))
		h.Write([]byte(s))
	case bool:
		if s {
			h.Write([]byte{fpBool, 1})
		} else {
			h.Write([]byte{fpBool, 0})
		}
	case []byte:
		h.Write([]byte{fpBytes})
		writeUint64(h, uint64(len(s)))
		h.Write(s)
	default:
		// Opaque values hash through their verbose Go representation.
		// That is stable enough for structs and named types, which is
		// all the tree-walking operations promise for them anyway.
		repr := fmt.Sprintf("%#v", v)
		h.Write([]byte{fpOpaque})
		writeUint64(h, uint64(len(repr)))
		h.Write([]byte(repr))
	}
}

func writeUint64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}
