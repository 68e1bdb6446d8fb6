// Package s3event normalizes raw S3 upload notifications into the ordered
// object references the pipeline consumes.
package s3event

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"vision-backend/internal/analysis"
)

// ErrMalformedNotification marks a notification the whole invocation rejects.
var ErrMalformedNotification = errors.New("malformed notification")

// Decode parses a raw notification payload, as delivered through SQS bodies.
func Decode(payload []byte) (events.S3Event, error) {
	var event events.S3Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return events.S3Event{}, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}
	return event, nil
}

// Extract returns the notification's object references in arrival order.
// Keys arrive percent-encoded and are decoded here ('+' and '%XX'); all
// downstream classification and storage operates on the decoded key.
func Extract(event events.S3Event) ([]analysis.ObjectRef, error) {
	if len(event.Records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrMalformedNotification)
	}

	refs := make([]analysis.ObjectRef, 0, len(event.Records))
	for i, record := range event.Records {
		bucket := record.S3.Bucket.Name
		if bucket == "" {
			return nil, fmt.Errorf("%w: record %d missing bucket name", ErrMalformedNotification, i)
		}
		rawKey := record.S3.Object.Key
		if rawKey == "" {
			return nil, fmt.Errorf("%w: record %d missing object key", ErrMalformedNotification, i)
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d key %q: %v", ErrMalformedNotification, i, rawKey, err)
		}
		refs = append(refs, analysis.ObjectRef{Bucket: bucket, Key: key})
	}
	return refs, nil
}
