package analysis

import "strings"

// ResolveBranch derives the branch name from the key's second path segment.
// Keys without a second segment fall back to the configured default.
// Environment is a separate deployment-tier label and is never derived here.
func ResolveBranch(key, fallback string) string {
	parts := strings.Split(key, "/")
	if len(parts) > 1 && parts[1] != "" {
		return parts[1]
	}
	return fallback
}
