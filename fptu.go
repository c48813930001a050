// Package fptu provides a compact binary tuple format: a single fixed-size
// arena that holds a growing array of typed field descriptors and a
// shrinking heap of variable-length payloads, addressed by 4-byte units.
//
// # Core features
//
//   - Column/type-tagged fields (17 scalar and variable-length types) with
//     bag semantics: a column may carry multiple values of the same type
//   - O(1) descriptor allocation for insert against a pre-reserved
//     descriptor band; upsert, update and erase find their target with a
//     linear scan of that band
//   - In-place compaction (Shrink) that reclaims space left by erase or a
//     shrinking update without moving the reserved descriptor band
//   - Zero-copy frozen read views (tuple.RO) safe for concurrent reads
//   - Optional Zstd/S2/LZ4 compression and xxHash64 checksums when
//     archiving many tuples in a container stream
//
// # Basic usage
//
// Building and freezing a tuple:
//
//	region := make([]byte, 4096)
//	rw, err := tuple.Init(region, 16) // reserve 16 descriptor slots
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rw.InsertUint32(0, 42)
//	rw.InsertCstr(1, "hello")
//	image := rw.Take() // shrinks, then freezes into a tuple.RO
//
// Reading a frozen tuple:
//
//	f, ok := image.Lookup(0, layout.Uint32)
//	if ok {
//	    v, _ := f.Uint32()
//	    fmt.Println(v)
//	}
//
// Archiving many frozen tuples in a compressed, checksummed stream:
//
//	wr, _ := container.NewWriter(file,
//	    container.WithCompression(compress.Zstd),
//	    container.WithChecksums(true),
//	)
//	wr.Write(image)
//	wr.Close()
//
// # Package structure
//
// This package is a thin convenience layer over tuple, layout, container,
// compress and integrity. For fine-grained control — custom reserved
// column counts, filter-based lookup across several types at once, nested
// tuples — use those packages directly.
package fptu

import (
	"github.com/alex-hoshin/libfptu/layout"
	"github.com/alex-hoshin/libfptu/tuple"
)

// New carves a fresh mutable arena out of a freshly allocated byte region
// sized to hold reserveCols descriptor slots plus payloadBytes of heap
// space, and initializes it with tuple.Init.
func New(reserveCols, payloadBytes int) (*tuple.RW, error) {
	regionUnits := 1 + reserveCols + layout.BytesToUnits(payloadBytes)
	region := make([]byte, layout.UnitsToBytes(regionUnits))
	return tuple.Init(region, reserveCols)
}

// Open wraps a caller-supplied byte region as a mutable arena, reserving
// reserveCols descriptor slots. Use this when the region's lifetime or
// placement (a pooled buffer, mmap'd memory) needs to be controlled by the
// caller rather than allocated by New.
func Open(region []byte, reserveCols int) (*tuple.RW, error) {
	return tuple.Init(region, reserveCols)
}

// View wraps a byte slice as a frozen read-only tuple, typically a slice
// read back from a container.Reader or from storage.
func View(image []byte) tuple.RO {
	return tuple.RO(image)
}
