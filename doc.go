// Package cycler provides a single-writer/many-reader slot-rotation
// primitive: one producer continuously publishes new snapshots of a
// value while any number of consumers observe a stable, unchanging copy,
// with neither side ever blocking the other.
//
// # Quick Start
//
//	w, r := cycler.BuildSingleReader([]MyState{{}, {}, {}})
//
//	// writer goroutine: mutate the held block in place, then publish it.
//	w.WriteViewMut().Counter++
//	w.Publish(func(dst, src *MyState) { *dst = *src })
//
//	// reader goroutine:
//	r.ReadLatest()
//	state := r.ReadView()
//
// # API Overview
//
// The package provides:
//   - Construction: [BuildSingleReader], [BuildMultiReader], and their
//     [BuildSingleReaderProjected], [BuildMultiReaderProjected],
//     [BuildSingleReaderDefault], [BuildMultiReaderDefault],
//     [BuildSingleReaderCloned], [BuildMultiReaderCloned] variants.
//   - Publishing: [Writer.Publish], [Writer.PublishExclusive],
//     [PublishDefault].
//   - Reading: [Reader.ReadLatest], [Reader.ReadView].
//   - The [Cloner] capability interface PublishDefault depends on.
//
// # How It Works
//
// A fixed pool of N+2 pre-allocated slots backs every writer/reader set:
// N is the number of readers, the two extra slots are the one the
// writer is currently filling and the one holding the most recently
// published value. Publishing never copies the whole pool and never
// blocks: the writer scans forward for any slot no reader currently
// holds, copies into it, and atomically republishes the "most recent"
// index. Readers never block either — they poll that index and
// reacquire on their own schedule, each walking away with a private
// reference to a complete, never-mutated-in-place value.
//
// # Compatibility
//
// Go version: 1.24 or later (the go directive in go.mod; the code uses
// generics and sync/atomic's typed atomic wrappers). No CGO requirement, no platform-specific code.
//
// # Links
//
// Package documentation:
// https://pkg.go.dev/github.com/kolkov/cycler
package cycler
