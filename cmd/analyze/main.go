package main

// Direct-invocation wrapper: uploads a local image into the pipeline's input
// prefix, then runs the same per-event pipeline the event trigger uses.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"vision-backend/internal/analysis"
	"vision-backend/internal/bootstrap"
	"vision-backend/internal/shared/config"
	"vision-backend/internal/shared/telemetry"
	"vision-backend/internal/upload"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the image to analyze")
		branch   = flag.String("branch", "", "target branch (default from BRANCH env)")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -file <image> [-branch beta|prod]")
		os.Exit(2)
	}

	cfg := config.Load()
	if *branch != "" {
		cfg.Branch = *branch
		if os.Getenv("ENVIRONMENT") == "" {
			cfg.Environment = *branch
		}
	}
	if cfg.S3Bucket == "" {
		log.Fatalf("S3_BUCKET is required")
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	ctx := context.Background()
	uploader, err := upload.New(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("uploader: %v", err)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open %s: %v", *filePath, err)
	}
	defer f.Close()

	invocationID := uuid.NewString()
	key := fmt.Sprintf("rekognition-input/%s/%s", cfg.Branch, filepath.Base(*filePath))

	size, err := uploader.Upload(ctx, cfg.S3Bucket, key, f, map[string]string{
		"environment":   cfg.Environment,
		"uploaded-by":   "analyze-cli",
		"invocation-id": invocationID,
	})
	if err != nil {
		log.Fatalf("upload: %v", err)
	}
	telemetry.Info("analyze.uploaded", map[string]any{
		"bucket":        cfg.S3Bucket,
		"key":           key,
		"bytes":         size,
		"invocation_id": invocationID,
	})

	record, err := app.Service.ProcessOne(ctx, analysis.ObjectRef{Bucket: cfg.S3Bucket, Key: key}, analysis.MethodDirectInvocation)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("render record: %v", err)
	}
	fmt.Println(string(out))
}
