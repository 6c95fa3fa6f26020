package search_test

import (
	"testing"
	"time"

	"github.com/seekerror/chass/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestProgressReporterNilCallbackIsNoOp(t *testing.T) {
	r := search.NewProgressReporter(nil)
	r.Start()
	r.Report([]search.Frame{{Index: 1, Total: 2}}, true)
	r.End()
}

func TestProgressReporterForceAlwaysReports(t *testing.T) {
	var calls int
	r := search.NewProgressReporter(func(frames []search.Frame) {
		calls++
	})
	r.Start()
	r.Report([]search.Frame{{Index: 0, Total: 5}}, true)
	r.Report([]search.Frame{{Index: 1, Total: 5}}, true)
	r.End()
	assert.Equal(t, 4, calls)
}

func TestProgressReporterThrottlesUnforced(t *testing.T) {
	// Back-to-back unforced reports within the same second are collapsed: only
	// the Start report (forced) goes out. Retried in case the wall clock rolls
	// over a second boundary between the two calls.
	for attempt := 0; attempt < 3; attempt++ {
		var received []search.Frame
		r := search.NewProgressReporter(func(frames []search.Frame) {
			received = frames
		})
		before := time.Now().Truncate(time.Second)
		r.Start()
		r.Report([]search.Frame{{Index: 1, Total: 10}}, false)
		if time.Now().Truncate(time.Second) != before {
			continue
		}
		assert.Equal(t, []search.Frame{{Index: 0, Total: 0}}, received)
		return
	}
	t.Skip("clock kept crossing second boundaries")
}
