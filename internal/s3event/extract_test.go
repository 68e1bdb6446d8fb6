package s3event

import (
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func notification(bucket, key string) events.S3Event {
	return events.S3Event{
		Records: []events.S3EventRecord{
			{
				S3: events.S3Entity{
					Bucket: events.S3Bucket{Name: bucket},
					Object: events.S3Object{Key: key},
				},
			},
		},
	}
}

func TestExtractDecodesPercentEncodedKeys(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"rekognition-input/beta/my+file.jpg", "rekognition-input/beta/my file.jpg"},
		{"rekognition-input/beta/my%2Bfile.jpg", "rekognition-input/beta/my+file.jpg"},
		{"rekognition-input/prod/cat.png", "rekognition-input/prod/cat.png"},
		{"rekognition-input/beta/caf%C3%A9.jpg", "rekognition-input/beta/café.jpg"},
	}

	for _, tc := range cases {
		refs, err := Extract(notification("imgs", tc.raw))
		if err != nil {
			t.Fatalf("extract %q: %v", tc.raw, err)
		}
		if len(refs) != 1 {
			t.Fatalf("expected 1 ref, got %d", len(refs))
		}
		if refs[0].Key != tc.want {
			t.Fatalf("key %q: expected %q, got %q", tc.raw, tc.want, refs[0].Key)
		}
		if refs[0].Bucket != "imgs" {
			t.Fatalf("expected bucket imgs, got %q", refs[0].Bucket)
		}
	}
}

func TestExtractPreservesArrivalOrder(t *testing.T) {
	event := events.S3Event{
		Records: []events.S3EventRecord{
			{S3: events.S3Entity{Bucket: events.S3Bucket{Name: "imgs"}, Object: events.S3Object{Key: "a.jpg"}}},
			{S3: events.S3Entity{Bucket: events.S3Bucket{Name: "imgs"}, Object: events.S3Object{Key: "b.jpg"}}},
			{S3: events.S3Entity{Bucket: events.S3Bucket{Name: "imgs"}, Object: events.S3Object{Key: "c.jpg"}}},
		},
	}

	refs, err := Extract(event)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(refs) != 3 || refs[0].Key != "a.jpg" || refs[1].Key != "b.jpg" || refs[2].Key != "c.jpg" {
		t.Fatalf("order not preserved: %+v", refs)
	}
}

func TestExtractEmptyRecordsIsMalformed(t *testing.T) {
	_, err := Extract(events.S3Event{})
	if !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed notification, got %v", err)
	}
}

func TestExtractMissingBucketOrKeyIsMalformed(t *testing.T) {
	if _, err := Extract(notification("", "a.jpg")); !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed for missing bucket, got %v", err)
	}
	if _, err := Extract(notification("imgs", "")); !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed for missing key, got %v", err)
	}
}

func TestExtractUndecodableKeyIsMalformed(t *testing.T) {
	if _, err := Extract(notification("imgs", "bad%zz.jpg")); !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed for undecodable key, got %v", err)
	}
}

func TestDecodeNotificationPayload(t *testing.T) {
	payload := `{"Records":[{"s3":{"bucket":{"name":"imgs"},"object":{"key":"rekognition-input/beta/dog.jpg"}}}]}`

	event, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	refs, err := Extract(event)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if refs[0].Bucket != "imgs" || refs[0].Key != "rekognition-input/beta/dog.jpg" {
		t.Fatalf("unexpected ref %+v", refs[0])
	}
}

func TestDecodeInvalidJSONIsMalformed(t *testing.T) {
	if _, err := Decode([]byte("{not-json")); !errors.Is(err, ErrMalformedNotification) {
		t.Fatalf("expected malformed notification, got %v", err)
	}
}
