// Package upload puts local files into the pipeline's input bucket for
// direct invocations.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader writes an object into a bucket.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, metadata map[string]string) (int64, error)
}

// S3Uploader implements Uploader on Amazon S3.
type S3Uploader struct {
	client *s3.Client
}

// New constructs an S3-backed uploader.
func New(ctx context.Context, region string) (*S3Uploader, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Uploader{client: s3.NewFromConfig(cfg)}, nil
}

// Upload streams the reader to s3://bucket/key, sniffing the content type
// from the first bytes. Returns the number of bytes written.
func (u *S3Uploader) Upload(ctx context.Context, bucket, key string, r io.Reader, metadata map[string]string) (int64, error) {
	if bucket == "" {
		return 0, fmt.Errorf("s3 bucket is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("read sniff: %w", readErr)
	}
	mimeType := http.DetectContentType(sniff[:n])

	body := io.MultiReader(bytes.NewReader(sniff[:n]), r)
	counter := &countingReader{r: body}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        counter,
		ContentType: aws.String(mimeType),
	}
	if len(metadata) > 0 {
		input.Metadata = metadata
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return 0, fmt.Errorf("s3 put object bucket=%s key=%s: %w", bucket, key, err)
	}
	return counter.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

var _ Uploader = (*S3Uploader)(nil)
