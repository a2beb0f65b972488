package core

// Build constructs a pool of the given size from values (one per slot)
// and returns a Writer plus a slice of readerCount Readers, projected
// through readView/writeView. It panics if len(values) is outside
// [minSlots, maxSlots] (see newPool) or if readerCount is negative or
// greater than numReaders() (len(values)-2).
//
// Slot layout mirrors the source system's builder exactly: the writer
// starts on index 1 (a write grant taken immediately), every reader
// starts on index 0 (a read grant taken immediately, shared across all
// of them since a fresh slot's count can hold arbitrarily many
// concurrent readers), and mostRecent starts at 0. This means the very
// first ReadLatest a reader performs, before the writer has ever
// published, is a no-op that reacquires the same slot it already held.
func Build[T any, R any, W any](
	values []T,
	readerCount int,
	readView func(*T) R,
	writeView func(*T) W,
) (*Writer[T, R, W], []*Reader[T, R, W]) {
	p := newPool(values)
	if readerCount < 0 || readerCount > p.numReaders() {
		panic("cycler: readerCount does not fit this pool size")
	}

	if !p.slots[1].tryAcquireWrite() {
		panic("cycler: unreachable, fresh slot 1 must be acquirable as writer")
	}
	w := &Writer[T, R, W]{
		pool:             p,
		currentlyWriting: 1,
		readView:         readView,
		writeView:        writeView,
	}

	readers := make([]*Reader[T, R, W], readerCount)
	for i := range readers {
		if !p.slots[0].tryAcquireRead() {
			panic("cycler: unreachable, fresh slot 0 must be acquirable as reader")
		}
		readers[i] = &Reader[T, R, W]{
			pool:     p,
			current:  0,
			readView: readView,
		}
	}

	return w, readers
}

func identityValue[T any](v *T) T    { return *v }
func identityPointer[T any](v *T) *T { return v }

// BuildSingleReader is the common case: one writer, one reader, no
// projection. The read view is T (a value copy, matching ReadAccess's
// shared-reference semantics: nothing the reader does to it can reach
// back into the pool); the write view is *T, since WriteAccess's
// exclusive-reference semantics require the writer to be able to mutate
// the block in place through WriteViewMut.
func BuildSingleReader[T any](values []T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	w, readers := Build[T, T, *T](values, 1, identityValue[T], identityPointer[T])
	return w, readers[0]
}

// BuildMultiReader builds one writer and readerCount readers, no
// projection.
func BuildMultiReader[T any](values []T, readerCount int) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return Build[T, T, *T](values, readerCount, identityValue[T], identityPointer[T])
}

// BuildSingleReaderProjected is BuildSingleReader with distinct read and
// write views projected out of T.
func BuildSingleReaderProjected[T any, R any, W any](
	values []T,
	readView func(*T) R,
	writeView func(*T) W,
) (*Writer[T, R, W], *Reader[T, R, W]) {
	w, readers := Build[T, R, W](values, 1, readView, writeView)
	return w, readers[0]
}

// BuildMultiReaderProjected is BuildMultiReader with distinct read and
// write views projected out of T.
func BuildMultiReaderProjected[T any, R any, W any](
	values []T,
	readerCount int,
	readView func(*T) R,
	writeView func(*T) W,
) (*Writer[T, R, W], []*Reader[T, R, W]) {
	return Build[T, R, W](values, readerCount, readView, writeView)
}

// valuesFromDefault fills an L-length slice with a single starting
// value, copied into every slot by assignment. This is the shape the source
// system's restore_default!/restore_clone! convenience constructors
// take: the caller supplies one logical starting value, not L of them.
func valuesFromDefault[T any](n int, zero T) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = zero
	}
	return values
}

// valuesFromClone fills an L-length slice by calling clone() once per
// slot, so a type whose zero value is unsafe to share (e.g. one holding
// a slice or map field two slots should not alias) gets an independent
// instance per slot.
func valuesFromClone[T any](n int, clone func() T) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = clone()
	}
	return values
}

// BuildSingleReaderDefault builds a single-reader pool of the requested
// size, every slot initialized from a copy of zero.
func BuildSingleReaderDefault[T any](size int, zero T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	return BuildSingleReader(valuesFromDefault(size, zero))
}

// BuildMultiReaderDefault builds a multi-reader pool of the requested
// size, every slot initialized from a copy of zero.
func BuildMultiReaderDefault[T any](size, readerCount int, zero T) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return BuildMultiReader(valuesFromDefault(size, zero), readerCount)
}

// BuildSingleReaderCloned builds a single-reader pool of the requested
// size, every slot initialized by an independent call to clone.
func BuildSingleReaderCloned[T any](size int, clone func() T) (*Writer[T, T, *T], *Reader[T, T, *T]) {
	return BuildSingleReader(valuesFromClone(size, clone))
}

// BuildMultiReaderCloned builds a multi-reader pool of the requested
// size, every slot initialized by an independent call to clone.
func BuildMultiReaderCloned[T any](size, readerCount int, clone func() T) (*Writer[T, T, *T], []*Reader[T, T, *T]) {
	return BuildMultiReader(valuesFromClone(size, clone), readerCount)
}
