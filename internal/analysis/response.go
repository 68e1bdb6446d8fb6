package analysis

import "encoding/json"

// Response is the invocation result envelope. Body is a JSON-encoded string,
// matching the shape event-trigger hosts and direct callers consume.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// BatchResponse reports a fully processed batch.
func BatchResponse(result BatchResult, environment, timestamp string) Response {
	return newResponse(200, map[string]any{
		"message":         "Successfully processed images",
		"processed_count": result.Processed,
		"environment":     environment,
		"timestamp":       timestamp,
	})
}

// RecordResponse reports a single processed record, used by direct invocation.
func RecordResponse(record Record) Response {
	return newResponse(200, map[string]any{
		"message":     "Image processed successfully",
		"filename":    record.Filename,
		"label_count": record.LabelCount,
		"environment": record.Environment,
		"timestamp":   record.Timestamp,
	})
}

// MalformedResponse reports a rejected notification.
func MalformedResponse(err error) Response {
	return newResponse(400, map[string]any{
		"error": err.Error(),
	})
}

// FailureResponse reports a fatal downstream error.
func FailureResponse(err error) Response {
	return newResponse(500, map[string]any{
		"message": "Error processing images",
		"error":   err.Error(),
	})
}

func newResponse(status int, body map[string]any) Response {
	data, err := json.Marshal(body)
	if err != nil {
		return Response{StatusCode: status, Body: "{}"}
	}
	return Response{StatusCode: status, Body: string(data)}
}
