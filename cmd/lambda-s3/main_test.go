package main

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

// The handler is exercised with the placeholder classifier and the in-memory
// store so no AWS calls happen.
func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "dev")
	t.Setenv("CLASSIFIER_PROVIDER", "placeholder")
	t.Setenv("DYNAMODB_TABLE", "")
	t.Setenv("BRANCH", "beta")
}

func TestHandlerRejectsMalformedNotification(t *testing.T) {
	setTestEnv(t)

	resp, err := handler(context.Background(), events.S3Event{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for malformed notification, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "error") {
		t.Fatalf("expected error body, got %q", resp.Body)
	}
}

func TestHandlerReportsDownstreamFailure(t *testing.T) {
	setTestEnv(t)

	event := events.S3Event{
		Records: []events.S3EventRecord{
			{
				S3: events.S3Entity{
					Bucket: events.S3Bucket{Name: "imgs"},
					Object: events.S3Object{Key: "rekognition-input/beta/dog.jpg"},
				},
			},
		},
	}

	resp, err := handler(context.Background(), event)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected 500 when the classifier is unavailable, got %d", resp.StatusCode)
	}
}

func TestHandlerSkipsInvalidKeys(t *testing.T) {
	setTestEnv(t)

	event := events.S3Event{
		Records: []events.S3EventRecord{
			{
				S3: events.S3Entity{
					Bucket: events.S3Bucket{Name: "imgs"},
					Object: events.S3Object{Key: "wrong-prefix/dog.jpg"},
				},
			},
		},
	}

	resp, err := handler(context.Background(), event)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 with the invalid event skipped, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, `"processed_count":0`) {
		t.Fatalf("expected zero processed count, got %q", resp.Body)
	}
}
