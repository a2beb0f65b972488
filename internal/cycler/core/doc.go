// Package core implements a single-writer/many-reader slot-rotation
// primitive: one producer continuously mutates a value while any number
// of consumers observe a stable, unchanging snapshot, with neither side
// ever blocking.
//
// Design:
//   - A fixed pool of L = N+2 pre-allocated slots, each holding one full
//     copy of the stored value plus a lock counter (slot.go).
//   - A bespoke non-blocking read/write lock per slot, built from a
//     single atomic counter rather than sync.RWMutex, because the only
//     operations ever needed are try-lock variants (slot.go).
//   - A writer that rotates through free slots, copying the
//     just-published value forward before handing readers the new
//     "most recent" index (writer.go).
//   - Readers that independently poll that index and re-acquire when it
//     moves (reader.go).
//
// The pool size of N+2 is the load-bearing invariant of the whole
// package: in the worst case all N readers hold N distinct slots, one
// further slot is named "most recent", and the writer holds the last —
// one slot is always free for the writer's next publish. See pool.go.
//
// This package is internal: it exposes every invariant directly (no
// capability hiding) because the root cycler package exists precisely to
// give this machinery a narrower, documented, and generic-friendly name.
package core
