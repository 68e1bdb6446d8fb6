package analysis

import (
	"math"
	"time"

	"vision-backend/internal/classify"
)

// retentionSeconds is the 90-day store expiry window.
const retentionSeconds = 90 * 24 * 60 * 60

// BuildRecord assembles the persisted record from a classification result.
// Timestamp is the record's creation time, not the object's upload time.
// Confidence is rounded to 2 decimals here, at formatting time.
func BuildRecord(ref ObjectRef, result classify.Result, branch, environment string, method Method, now time.Time) Record {
	now = now.UTC()

	labels := make([]Label, 0, len(result.Labels))
	for _, label := range result.Labels {
		labels = append(labels, Label{
			Name:       label.Name,
			Confidence: round2(label.Confidence),
		})
	}

	return Record{
		Filename:    ref.Key,
		Labels:      labels,
		Timestamp:   FormatTimestamp(now),
		Branch:      branch,
		Environment: environment,
		LabelCount:  len(labels),
		Method:      method,
		S3Bucket:    ref.Bucket,
		RequestID:   result.RequestID,
		TTL:         now.Unix() + retentionSeconds,
	}
}

// FormatTimestamp renders a record timestamp: UTC ISO-8601 with a literal
// trailing Z at second precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
