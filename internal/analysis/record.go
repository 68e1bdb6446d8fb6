package analysis

// ObjectRef identifies one uploaded object extracted from a notification.
// Key is percent-decoded before it reaches the pipeline.
type ObjectRef struct {
	Bucket string
	Key    string
}

// Method tags how the pipeline was invoked.
type Method string

const (
	MethodEventTrigger     Method = "event_trigger"
	MethodDirectInvocation Method = "direct_invocation"
)

// Label is a detected label as persisted, confidence rounded to 2 decimals.
type Label struct {
	Name       string  `dynamodbav:"Name" json:"Name"`
	Confidence float64 `dynamodbav:"Confidence" json:"Confidence"`
}

// Record is the persisted analysis entity. Filename plus timestamp act as
// the natural identity; the store enforces nothing beyond its own key.
type Record struct {
	Filename    string  `dynamodbav:"filename" json:"filename"`
	Labels      []Label `dynamodbav:"labels" json:"labels"`
	Timestamp   string  `dynamodbav:"timestamp" json:"timestamp"`
	Branch      string  `dynamodbav:"branch" json:"branch"`
	Environment string  `dynamodbav:"environment" json:"environment"`
	LabelCount  int     `dynamodbav:"label_count" json:"label_count"`
	Method      Method  `dynamodbav:"analysis_method" json:"analysis_method"`
	S3Bucket    string  `dynamodbav:"s3_bucket" json:"s3_bucket"`
	RequestID   string  `dynamodbav:"rekognition_request_id,omitempty" json:"rekognition_request_id,omitempty"`
	TTL         int64   `dynamodbav:"ttl" json:"ttl"`
}
