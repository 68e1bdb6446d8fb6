package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-s3

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"vision-backend/internal/analysis"
	"vision-backend/internal/bootstrap"
	"vision-backend/internal/s3event"
	"vision-backend/internal/shared/config"
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

func handler(ctx context.Context, event events.S3Event) (analysis.Response, error) {
	initOnce.Do(initApp)
	if initErr != nil {
		log.Printf("bootstrap error: %v", initErr)
		return analysis.FailureResponse(initErr), initErr
	}

	refs, err := s3event.Extract(event)
	if err != nil {
		return analysis.MalformedResponse(err), nil
	}

	result, err := app.Service.ProcessBatch(ctx, refs, analysis.MethodEventTrigger)
	if err != nil {
		return analysis.FailureResponse(err), nil
	}
	return analysis.BatchResponse(result, app.Config.Environment, analysis.FormatTimestamp(time.Now())), nil
}

func main() {
	lambda.Start(handler)
}
