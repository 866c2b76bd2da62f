// Package moderation provides content classification for user-supplied text.
// It defines the capability interface the validator depends on (classify text
// into severity-by-category) so the concrete classifier implementation can be
// swapped without changing validation logic. The accept/reject threshold is
// deliberately NOT part of this package; callers own their policy.
package moderation

// file: internal/moderation/moderation.go

// Severity is the categorical strength of a content-moderation signal.
// Severities are ordered; comparisons use the integer rank.
type Severity int

const (
	// SeverityNone indicates no signal in a category.
	SeverityNone Severity = iota

	// SeverityMild indicates a weak signal, e.g. casual swearing.
	SeverityMild

	// SeverityModerate indicates a clear signal most audiences would object to.
	SeverityModerate

	// SeveritySevere indicates slurs and other unambiguously offensive content.
	SeveritySevere
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is at or above the given severity.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

// Category identifies a kind of objectionable content.
type Category string

const (
	// CategoryProfane covers general profanity and swearing.
	CategoryProfane Category = "profane"

	// CategorySexual covers sexual and anatomical terms.
	CategorySexual Category = "sexual"

	// CategoryOffensive covers slurs and targeted insults.
	CategoryOffensive Category = "offensive"

	// CategoryInappropriate covers content that is objectionable without
	// fitting the other categories, e.g. references to violence or hate symbols.
	CategoryInappropriate Category = "inappropriate"
)

// Analysis holds the strongest severity found per category for one piece of text.
// Categories with no signal are absent; reads of absent categories yield SeverityNone.
type Analysis map[Category]Severity

// Any reports whether any category reached at least the given severity.
func (a Analysis) Any(min Severity) bool {
	for _, s := range a {
		if s.AtLeast(min) {
			return true
		}
	}
	return false
}

// Max returns the strongest severity across all categories.
func (a Analysis) Max() Severity {
	max := SeverityNone
	for _, s := range a {
		if s > max {
			max = s
		}
	}
	return max
}

// Classifier scores text for objectionable content.
// Implementations must be safe for concurrent use and must not retain
// or mutate the input.
type Classifier interface {
	// Classify analyzes the raw text and returns the strongest severity
	// found in each category.
	Classify(text string) Analysis
}
