package core

// Writer is the exclusive write handle into a pool. Exactly one Writer
// exists per pool; it holds the write grant on its currentlyWriting slot
// for its entire lifetime between Publish calls, and must only ever be
// used from one goroutine at a time.
//
// R and W are the projected read/write view types (see
// BuildSingleReaderProjected); readView and writeView are the projection
// functions supplied at build time. When a Writer is built without
// projection, R = T and W = *T: readView returns a copy of the slot's
// value and writeView returns a pointer into the slot.
type Writer[T any, R any, W any] struct {
	pool             *pool[T]
	currentlyWriting int
	readView         func(*T) R
	writeView        func(*T) W
}

// ReadView exposes the read-projected view of the block the writer is
// currently holding. Writers may read their own in-progress block at any
// time; this mirrors AtomicCyclerWriter's ReadAccess impl in the system
// this primitive is modeled on, which forwards straight through to the
// held write grant.
func (w *Writer[T, R, W]) ReadView() R {
	return w.readView(w.pool.slots[w.currentlyWriting].get())
}

// WriteView exposes the write-projected view of the block the writer is
// currently holding.
func (w *Writer[T, R, W]) WriteView() W {
	return w.writeView(w.pool.slots[w.currentlyWriting].get())
}

// WriteViewMut exposes the same projection as WriteView. Go has no type-
// level distinction between a shared and an exclusive borrow over the
// same pointer the way the system this primitive is modeled on does
// (&Self::Write vs &mut Self::Write); both accessors exist, and return
// identically-derived values, purely to keep the two-operation call-site
// contract (write_data / write_data_mut) that callers porting code from
// that system expect.
func (w *Writer[T, R, W]) WriteViewMut() W {
	return w.writeView(w.pool.slots[w.currentlyWriting].get())
}

// Publish advances the writer to a new slot, invoking copy(dst, src) to
// populate it from the just-published slot. The source slot is
// downgraded to a read grant before copy runs, so concurrent readers may
// acquire it for the duration of the copy — this is the preferred mode
// whenever copy does not need exclusive access to src.
//
// Algorithm (mirrors the source system's rw_cycler_fn! macro):
//  1. Scan forward from currentlyWriting+1 (mod L) for a slot this
//     writer can acquire as a writer; the N+2 pool-size invariant
//     guarantees one exists.
//  2. Downgrade the old (currently-writing) slot to a read grant.
//  3. Run copy(dst = new slot, src = old slot).
//  4. Publish the old slot's index as most-recent. This must happen
//     after the copy completes (so the copy is visible to the first
//     reader to observe the new index) and before the old slot's grant
//     is released (so most_recent never, even momentarily, names a
//     slot this writer could re-acquire as a writer out from under a
//     racing reader).
//  5. Adopt the new slot as currentlyWriting and release the old slot's
//     now-redundant read grant.
func (w *Writer[T, R, W]) Publish(copy func(dst, src *T)) {
	w.publish(copy, true)
}

// PublishExclusive is Publish's mut-source mode: the source slot stays
// write-locked (exclusive) for the duration of the copy instead of being
// downgraded, so no reader may acquire it until publish completes. Use
// this only when copy requires exclusive access to src; it otherwise
// trades away the opportunity for readers to observe the old slot while
// the copy runs.
func (w *Writer[T, R, W]) PublishExclusive(copy func(dst, src *T)) {
	w.publish(copy, false)
}

func (w *Writer[T, R, W]) publish(copy func(dst, src *T), downgradeSource bool) {
	length := w.pool.length()
	next := (w.currentlyWriting + 1) % length
	for !w.pool.slots[next].tryAcquireWrite() {
		next = (next + 1) % length
	}

	old := w.currentlyWriting
	oldSlot := w.pool.slots[old]
	newSlot := w.pool.slots[next]

	if downgradeSource {
		oldSlot.downgrade()
	}
	copy(newSlot.get(), oldSlot.get())

	w.pool.storeMostRecent(old)
	w.currentlyWriting = next

	if downgradeSource {
		oldSlot.release()
	} else {
		oldSlot.releaseWrite()
	}
}

// Cloner is satisfied by a stored type that can produce an independent
// copy of itself. It is the capability PublishDefault needs in order to
// publish without the caller supplying an explicit copy function,
// standing in for Clone::clone_from in the system this primitive is
// modeled on.
//
// A value-receiver Clone() T (the convention stdlib's maps.Clone and
// slices.Clone also follow) is used rather than attempting to replicate
// clone_from's in-place-reuse signature exactly: an in-place variant
// would need T's method to have a pointer receiver, which Go cannot
// express as a plain type-parameter constraint without also requiring
// every caller to name the pointer type explicitly at each call site.
type Cloner[T any] interface {
	Clone() T
}

// PublishDefault advances w to a new slot, populating it with a Clone()
// of the just-published value. It is a free function rather than a
// method on Writer because Go cannot conditionally attach a method to
// Writer[T, R, W] only for T satisfying Cloner[T].
func PublishDefault[T Cloner[T], R any, W any](w *Writer[T, R, W]) {
	w.Publish(func(dst, src *T) {
		*dst = (*src).Clone()
	})
}
