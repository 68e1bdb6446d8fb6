package classify

import (
	"context"
	"errors"
)

// Client abstracts label-detection providers.
type Client interface {
	DetectLabels(ctx context.Context, req Request) (Result, error)
}

// Request identifies the stored object to classify and the per-branch caps.
// MaxLabels and MinConfidence are passed through to the provider unmodified.
type Request struct {
	Bucket        string
	Key           string
	MaxLabels     int32
	MinConfidence float64
}

// Label is a single detected label with the provider's confidence score.
// Confidence keeps source precision; rounding happens when records are built.
type Label struct {
	Name       string
	Confidence float64
}

// Result is the ordered label list plus the provider's request id,
// kept for audit logging only.
type Result struct {
	Labels    []Label
	RequestID string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("classifier not configured")

// Placeholder is a stub implementation for wiring without a provider.
type Placeholder struct{}

// DetectLabels returns ErrNotConfigured.
func (Placeholder) DetectLabels(ctx context.Context, req Request) (Result, error) {
	_ = ctx
	_ = req
	return Result{}, ErrNotConfigured
}
