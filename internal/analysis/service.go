package analysis

import (
	"context"
	"errors"
	"time"

	"vision-backend/internal/classify"
	"vision-backend/internal/shared/metrics"
	"vision-backend/internal/shared/telemetry"
)

// Service runs the per-event pipeline: validate, classify, resolve branch,
// build record, persist. Dependencies are injected once at bootstrap and
// shared across invocations; the service itself holds no mutable state.
type Service struct {
	Classifier  classify.Client
	Store       ResultStore
	Policy      BranchPolicy
	Environment string

	// Now is the record clock; nil means time.Now.
	Now func() time.Time
}

// BatchResult aggregates one invocation's outcome.
type BatchResult struct {
	Processed int
	Skipped   int
	Records   []Record
}

// ProcessBatch runs the pipeline over the refs in arrival order,
// sequentially. Validation failures are skips; a classification or
// persistence failure aborts the remaining events and is returned.
func (s *Service) ProcessBatch(ctx context.Context, refs []ObjectRef, method Method) (BatchResult, error) {
	var result BatchResult
	for _, ref := range refs {
		record, err := s.ProcessOne(ctx, ref, method)
		if err != nil {
			var invalid *ValidationError
			if errors.As(err, &invalid) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Processed++
		result.Records = append(result.Records, record)
	}
	return result, nil
}

// ProcessOne runs the pipeline for a single object reference. A returned
// *ValidationError means the event was skipped before any classifier or
// store call.
func (s *Service) ProcessOne(ctx context.Context, ref ObjectRef, method Method) (Record, error) {
	if err := s.Policy.Validate(ref.Key); err != nil {
		reason := ""
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			reason = invalid.Reason
		}
		metrics.IncEventSkipped()
		telemetry.Warn("pipeline.skip", map[string]any{
			"bucket": ref.Bucket,
			"key":    ref.Key,
			"reason": reason,
		})
		return Record{}, err
	}

	started := metrics.NowMillis()
	detected, err := s.Classifier.DetectLabels(ctx, classify.Request{
		Bucket:        ref.Bucket,
		Key:           ref.Key,
		MaxLabels:     s.Policy.MaxLabels,
		MinConfidence: s.Policy.MinConfidence,
	})
	metrics.ObserveClassifyDurationMs(metrics.NowMillis() - started)
	if err != nil {
		metrics.IncEventFailed()
		telemetry.Error("pipeline.classify_failed", map[string]any{
			"bucket": ref.Bucket,
			"key":    ref.Key,
			"cause":  err.Error(),
		})
		return Record{}, &ClassificationError{Bucket: ref.Bucket, Key: ref.Key, Err: err}
	}

	branch := ResolveBranch(ref.Key, s.Environment)
	record := BuildRecord(ref, detected, branch, s.Environment, method, s.now())

	if err := s.Store.Put(ctx, record); err != nil {
		metrics.IncEventFailed()
		telemetry.Error("pipeline.persist_failed", map[string]any{
			"bucket": ref.Bucket,
			"key":    ref.Key,
			"cause":  err.Error(),
		})
		return Record{}, &PersistenceError{Filename: record.Filename, Err: err}
	}

	metrics.IncEventProcessed()
	telemetry.Info("pipeline.stored", map[string]any{
		"bucket":      ref.Bucket,
		"key":         ref.Key,
		"branch":      branch,
		"label_count": record.LabelCount,
		"request_id":  record.RequestID,
	})
	return record, nil
}

// QueryByBranch exposes the store's verification read path.
func (s *Service) QueryByBranch(ctx context.Context, branch string, limit int32) ([]Record, error) {
	return s.Store.QueryByBranch(ctx, branch, limit)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
