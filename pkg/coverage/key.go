package coverage

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Mode selects how executed blocks are attributed: by owning OS process or by
// raw address-space identifier. It is fixed once at startup and never changes
// for the lifetime of a run.
type Mode string

const (
	ModeProcess Mode = "process"
	ModeAsid    Mode = "asid"
)

// BlockKey identifies one executed basic block within one execution context.
// ContextID carries a process id in process mode and an address-space id in
// asid mode; PC is the address of the first instruction of the block.
type BlockKey struct {
	ContextID uint64
	PC        uint64
}

// HashFunc maps a BlockKey to a bucket hash. The seen-set takes one at
// construction so tests can force collisions.
type HashFunc func(BlockKey) uint64

// DefaultHash hashes each field separately and combines the results with a
// positional shift, so keys with swapped field values do not collide.
func DefaultHash(key BlockKey) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key.ContextID)
	h1 := xxhash.Sum64(buf[:])
	binary.LittleEndian.PutUint64(buf[:], key.PC)
	h2 := xxhash.Sum64(buf[:])
	return h1 ^ (h2 << 1)
}
