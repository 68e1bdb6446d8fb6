package analysis

import (
	"fmt"
	"testing"
	"time"

	"vision-backend/internal/classify"
)

func TestBuildRecordRoundsConfidenceAtFormattingTime(t *testing.T) {
	ref := ObjectRef{Bucket: "imgs", Key: "rekognition-input/beta/dog.jpg"}
	result := classify.Result{
		Labels:    []classify.Label{{Name: "Dog", Confidence: 93.456}},
		RequestID: "req-1",
	}

	record := BuildRecord(ref, result, "beta", "beta", MethodEventTrigger, time.Now())

	if len(record.Labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(record.Labels))
	}
	if record.Labels[0].Name != "Dog" || record.Labels[0].Confidence != 93.46 {
		t.Fatalf("expected Dog/93.46, got %+v", record.Labels[0])
	}
	if record.LabelCount != 1 {
		t.Fatalf("expected label count 1, got %d", record.LabelCount)
	}
	if record.Branch != "beta" {
		t.Fatalf("expected branch beta, got %q", record.Branch)
	}
	if record.RequestID != "req-1" {
		t.Fatalf("expected request id carried through, got %q", record.RequestID)
	}
}

func TestBuildRecordLabelCountMatchesLabels(t *testing.T) {
	ref := ObjectRef{Bucket: "imgs", Key: "rekognition-input/beta/dog.jpg"}

	for n := 0; n <= 10; n++ {
		labels := make([]classify.Label, 0, n)
		for i := 0; i < n; i++ {
			labels = append(labels, classify.Label{Name: fmt.Sprintf("label-%d", i), Confidence: 80.0})
		}
		record := BuildRecord(ref, classify.Result{Labels: labels}, "beta", "beta", MethodEventTrigger, time.Now())
		if record.LabelCount != len(record.Labels) || record.LabelCount != n {
			t.Fatalf("n=%d: label count %d does not match %d labels", n, record.LabelCount, len(record.Labels))
		}
	}
}

func TestBuildRecordTTLIsNinetyDaysFromTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 30, 45, 123456789, time.UTC)
	ref := ObjectRef{Bucket: "imgs", Key: "rekognition-input/beta/dog.jpg"}

	record := BuildRecord(ref, classify.Result{}, "beta", "beta", MethodEventTrigger, now)

	if record.Timestamp != "2026-08-31T12:30:45Z" {
		t.Fatalf("unexpected timestamp %q", record.Timestamp)
	}
	parsed, err := time.Parse("2006-01-02T15:04:05Z", record.Timestamp)
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	if record.TTL != parsed.Unix()+7776000 {
		t.Fatalf("expected ttl %d, got %d", parsed.Unix()+7776000, record.TTL)
	}
}

func TestBuildRecordNormalizesLocalTime(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 8, 31, 17, 0, 0, 0, loc)
	ref := ObjectRef{Bucket: "imgs", Key: "rekognition-input/beta/dog.jpg"}

	record := BuildRecord(ref, classify.Result{}, "beta", "beta", MethodDirectInvocation, now)

	if record.Timestamp != "2026-08-31T12:00:00Z" {
		t.Fatalf("expected UTC timestamp, got %q", record.Timestamp)
	}
	if record.Method != MethodDirectInvocation {
		t.Fatalf("expected direct_invocation method, got %q", record.Method)
	}
}

func TestResolveBranch(t *testing.T) {
	cases := []struct {
		key      string
		fallback string
		want     string
	}{
		{"rekognition-input/prod/cat.png", "beta", "prod"},
		{"rekognition-input/beta/dog.jpg", "prod", "beta"},
		{"single-segment.jpg", "beta", "beta"},
		{"rekognition-input/", "beta", "beta"},
	}

	for _, tc := range cases {
		if got := ResolveBranch(tc.key, tc.fallback); got != tc.want {
			t.Fatalf("key %q: expected branch %q, got %q", tc.key, tc.want, got)
		}
	}
}
