package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-sqs
//
// Entry point for S3 upload notifications delivered through an SQS queue.

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"vision-backend/internal/analysis"
	"vision-backend/internal/bootstrap"
	"vision-backend/internal/s3event"
	"vision-backend/internal/shared/config"
	"vision-backend/internal/shared/telemetry"
)

var (
	initOnce sync.Once
	initErr  error
	app      *bootstrap.App
)

func initApp() {
	cfg := config.Load()
	built, err := bootstrap.Build(cfg)
	if err != nil {
		initErr = err
		return
	}
	app = built
}

func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	initOnce.Do(initApp)
	if initErr != nil {
		log.Printf("bootstrap error: %v", initErr)
		failures := make([]events.SQSBatchItemFailure, 0, len(event.Records))
		for _, record := range event.Records {
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
		return events.SQSEventResponse{BatchItemFailures: failures}, initErr
	}

	failures := make([]events.SQSBatchItemFailure, 0)
	for _, record := range event.Records {
		if err := handleMessage(ctx, record.Body); err != nil {
			// Malformed bodies are dropped, not retried; requeueing a
			// notification that can never parse only poisons the queue.
			if errors.Is(err, s3event.ErrMalformedNotification) {
				telemetry.Error("sqs.malformed_notification", map[string]any{
					"message_id": record.MessageId,
					"cause":      err.Error(),
				})
				continue
			}
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}

	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

func handleMessage(ctx context.Context, body string) error {
	notification, err := s3event.Decode([]byte(body))
	if err != nil {
		return err
	}
	refs, err := s3event.Extract(notification)
	if err != nil {
		return err
	}
	_, err = app.Service.ProcessBatch(ctx, refs, analysis.MethodEventTrigger)
	return err
}

func main() {
	lambda.Start(handler)
}
