package cycler_test

import (
	"fmt"

	"github.com/kolkov/cycler"
)

// Example demonstrates the basic single-writer/single-reader case: mutate
// the writer's held block via WriteViewMut, then Publish to make it the
// value readers observe and seed the next block from it.
func Example() {
	w, r := cycler.BuildSingleReader([]int{0, 0, 0})

	*w.WriteViewMut() = 1
	w.Publish(func(dst, src *int) { *dst = *src })

	*w.WriteViewMut() += 1
	w.Publish(func(dst, src *int) { *dst = *src })

	r.ReadLatest()
	fmt.Println(r.ReadView())

	// Output:
	// 2
}

// Example_multiReader demonstrates one writer feeding several
// independent readers, each advancing on its own schedule.
func Example_multiReader() {
	w, readers := cycler.BuildMultiReader([]string{"", "", "", ""}, 2)

	*w.WriteViewMut() = "first"
	w.Publish(func(dst, src *string) { *dst = *src })
	readers[0].ReadLatest()
	fmt.Println("reader 0:", readers[0].ReadView())

	*w.WriteViewMut() = "second"
	w.Publish(func(dst, src *string) { *dst = *src })
	readers[0].ReadLatest()
	readers[1].ReadLatest()
	fmt.Println("reader 0:", readers[0].ReadView())
	fmt.Println("reader 1:", readers[1].ReadView())

	// Output:
	// reader 0: first
	// reader 0: second
	// reader 1: second
}

type sensorReading struct {
	celsius    float64
	sampleSeen int // writer-only bookkeeping, never exposed to readers
}

// Example_projected demonstrates hiding a writer-only field from the
// reader's view type via a projection.
func Example_projected() {
	w, r := cycler.BuildSingleReaderProjected(
		[]sensorReading{{}, {}, {}},
		func(s *sensorReading) float64 { return s.celsius },
		func(s *sensorReading) *sensorReading { return s },
	)

	wv := w.WriteViewMut()
	wv.celsius = 21.5
	wv.sampleSeen++
	w.Publish(func(dst, src *sensorReading) { *dst = *src })

	r.ReadLatest()
	fmt.Println(r.ReadView())

	// Output:
	// 21.5
}
