// Package cycler — see doc.go for detailed documentation and examples.
package cycler

import "github.com/kolkov/cycler/internal/cycler/core"

// Writer is the exclusive publish handle for a pool. Exactly one exists
// per pool and it must only ever be used from one goroutine at a time.
//
// R and W are the read/write projection types — for the unprojected
// constructors below, R is T and W is *T (a pointer, so WriteViewMut can
// actually mutate the held block); see [BuildSingleReaderProjected] and
// [BuildMultiReaderProjected] for constructing a custom pair.
type Writer[T any, R any, W any] = core.Writer[T, R, W]

// Reader is one consumer's handle into a pool. Any number may exist per
// pool, bounded by the pool's reader capacity (its size minus 2).
type Reader[T any, R any, W any] = core.Reader[T, R, W]

// BuildSingleReader constructs a pool from values (one initial value per
// slot) and returns a writer and its single reader, with no read/write
// projection. It panics if len(values) is outside [3, 255].
func BuildSingleReader[T any](values []T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	return core.BuildSingleReader(values)
}

// BuildMultiReader is [BuildSingleReader] generalized to readerCount
// readers. It panics if readerCount exceeds len(values)-2.
func BuildMultiReader[T any](values []T, readerCount int) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return core.BuildMultiReader(values, readerCount)
}

// BuildSingleReaderProjected is [BuildSingleReader] with distinct read
// and write views projected out of the stored type T. Projecting lets a
// writer expose, for example, an internal change-log field to itself
// while hiding it from readers' view type.
func BuildSingleReaderProjected[T any, R any, W any](
	values []T,
	readView func(*T) R,
	writeView func(*T) W,
) (*Writer[T, R, W], *Reader[T, R, W]) {
	return core.BuildSingleReaderProjected(values, readView, writeView)
}

// BuildMultiReaderProjected is [BuildMultiReader] with distinct read and
// write views projected out of the stored type T.
func BuildMultiReaderProjected[T any, R any, W any](
	values []T,
	readerCount int,
	readView func(*T) R,
	writeView func(*T) W,
) (*Writer[T, R, W], []*Reader[T, R, W]) {
	return core.BuildMultiReaderProjected(values, readerCount, readView, writeView)
}

// BuildSingleReaderDefault builds a single-reader pool of the requested
// size, every slot initialized from a copy of zero.
func BuildSingleReaderDefault[T any](size int, zero T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	return core.BuildSingleReaderDefault(size, zero)
}

// BuildMultiReaderDefault builds a multi-reader pool of the requested
// size, every slot initialized from a copy of zero.
func BuildMultiReaderDefault[T any](size, readerCount int, zero T) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return core.BuildMultiReaderDefault(size, readerCount, zero)
}

// BuildSingleReaderCloned builds a single-reader pool of the requested
// size, every slot initialized by an independent call to clone. Prefer
// this over [BuildSingleReaderDefault] when T's zero value would alias
// mutable state (a slice or map field) across slots.
func BuildSingleReaderCloned[T any](size int, clone func() T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	return core.BuildSingleReaderCloned(size, clone)
}

// BuildMultiReaderCloned builds a multi-reader pool of the requested
// size, every slot initialized by an independent call to clone.
func BuildMultiReaderCloned[T any](size, readerCount int, clone func() T) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return core.BuildMultiReaderCloned(size, readerCount, clone)
}

// PublishDefault advances w to a new slot, populating it with a Clone()
// of the just-published value.
func PublishDefault[T Cloner[T], R any, W any](w *Writer[T, R, W]) {
	core.PublishDefault(w)
}
