package analysis

import (
	"fmt"
	"strings"
)

// BranchPolicy captures the per-branch input rules and classification caps.
// Divergent beta/prod behavior lives here as data, not as pipeline variants.
type BranchPolicy struct {
	Prefix        string
	Extensions    []string
	MaxLabels     int32
	MinConfidence float64
}

// DefaultPolicies returns the built-in branch policies.
func DefaultPolicies() map[string]BranchPolicy {
	return map[string]BranchPolicy{
		"beta": {
			Prefix:        "rekognition-input/beta/",
			Extensions:    []string{".jpg", ".jpeg", ".png"},
			MaxLabels:     10,
			MinConfidence: 70.0,
		},
		"prod": {
			Prefix:        "rekognition-input/prod/",
			Extensions:    []string{".jpg", ".jpeg", ".png", ".pdf", ".heic"},
			MaxLabels:     10,
			MinConfidence: 50.0,
		},
	}
}

// PolicyFor returns the policy for the given branch. Unknown branches get
// the beta rules under their own prefix.
func PolicyFor(branch string) BranchPolicy {
	if policy, ok := DefaultPolicies()[branch]; ok {
		return policy
	}
	base := DefaultPolicies()["beta"]
	base.Prefix = fmt.Sprintf("rekognition-input/%s/", branch)
	return base
}

// Validate checks the object key against the policy. Prefix matching is
// case-sensitive, extension matching is not. A non-nil result means the
// event is skipped without classifier or store calls.
func (p BranchPolicy) Validate(key string) error {
	if !strings.HasPrefix(key, p.Prefix) {
		return &ValidationError{Key: key, Reason: ReasonPrefixMismatch}
	}
	lower := strings.ToLower(key)
	for _, ext := range p.Extensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return &ValidationError{Key: key, Reason: ReasonUnsupportedExtension}
}
