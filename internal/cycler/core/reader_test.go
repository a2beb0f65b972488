package core

import "testing"

func forward(dst, src *int) { *dst = *src }

func TestReaderReadLatestBeforeAnyPublish(t *testing.T) {
	_, r := BuildSingleReader([]int{1, 2, 3})
	r.ReadLatest() // must be a harmless no-op, not a deadlock or panic
	if got := r.ReadView(); got != 1 {
		t.Errorf("ReadView() = %d, want 1 (slot 0, the only ever-published index)", got)
	}
}

func TestReaderTracksMultiplePublishes(t *testing.T) {
	w, r := BuildSingleReader([]int{0, 0, 0, 0})
	for i := 1; i <= 3; i++ {
		*w.WriteViewMut() = i
		w.Publish(forward)
		r.ReadLatest()
		if got := r.ReadView(); got != i {
			t.Errorf("iteration %d: ReadView() = %d, want %d", i, got, i)
		}
	}
}

func TestMultiReaderIndependentProgress(t *testing.T) {
	w, readers := BuildMultiReader([]int{0, 0, 0, 0}, 2)
	*w.WriteViewMut() = 1
	w.Publish(forward)

	readers[0].ReadLatest()
	if got := readers[0].ReadView(); got != 1 {
		t.Errorf("reader 0: ReadView() = %d, want 1", got)
	}
	if got := readers[1].ReadView(); got != 0 {
		t.Errorf("reader 1 must not advance until it calls ReadLatest itself: got %d, want 0", got)
	}

	readers[1].ReadLatest()
	if got := readers[1].ReadView(); got != 1 {
		t.Errorf("reader 1 after its own ReadLatest: ReadView() = %d, want 1", got)
	}
}
