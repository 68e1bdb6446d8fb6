package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncEventProcessed()
	IncEventSkipped()
	IncEventFailed()
	ObserveClassifyDurationMs(120)

	out := Render()

	for _, name := range []string{
		"pipeline_events_processed_total",
		"pipeline_events_skipped_total",
		"pipeline_events_failed_total",
		"pipeline_classify_duration_ms_bucket",
		"pipeline_classify_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected rendered metrics to contain %s:\n%s", name, out)
		}
	}
}

func TestObserveNegativeClampsToZero(t *testing.T) {
	before := classifyDuration.Snapshot().count
	ObserveClassifyDurationMs(-5)
	snap := classifyDuration.Snapshot()
	if snap.count != before+1 {
		t.Fatalf("expected observation to be recorded")
	}
}
