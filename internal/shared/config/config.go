package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	AWSRegion          string
	S3Bucket           string
	DynamoDBTable      string
	Branch             string
	Environment        string
	MaxLabels          int32
	MinConfidence      float64
	ClassifierProvider string
	Env                string
}

// Load reads configuration from environment variables with sensible defaults.
// MaxLabels and MinConfidence are zero when unset so the branch policy
// defaults apply; explicit values override the policy.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	branch := normalizeBranch(getEnv("BRANCH", "beta"))

	return Config{
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		DynamoDBTable:      getEnv("DYNAMODB_TABLE", ""),
		Branch:             branch,
		Environment:        getEnv("ENVIRONMENT", branch),
		MaxLabels:          int32(getEnvInt("MAX_LABELS", 0)),
		MinConfidence:      getEnvFloat("MIN_CONFIDENCE", 0),
		ClassifierProvider: normalizeProvider(getEnv("CLASSIFIER_PROVIDER", "rekognition")),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 || val > 100 {
		return def
	}
	return val
}

func normalizeBranch(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "prod", "production":
		return "prod"
	case "beta":
		return "beta"
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "placeholder", "none":
		return "placeholder"
	default:
		return "rekognition"
	}
}
