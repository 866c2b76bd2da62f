// file: internal/moderation/moderation_test.go
package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, SeveritySevere.AtLeast(SeverityModerate))
	assert.True(t, SeverityModerate.AtLeast(SeverityModerate))
	assert.False(t, SeverityMild.AtLeast(SeverityModerate))
	assert.False(t, SeverityNone.AtLeast(SeverityMild))
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		want     string
	}{
		{SeverityNone, "none"},
		{SeverityMild, "mild"},
		{SeverityModerate, "moderate"},
		{SeveritySevere, "severe"},
		{Severity(42), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.severity.String())
	}
}

func TestAnalysisAggregation(t *testing.T) {
	t.Parallel()

	analysis := Analysis{
		CategoryProfane: SeverityMild,
		CategorySexual:  SeverityModerate,
	}

	assert.True(t, analysis.Any(SeverityMild))
	assert.True(t, analysis.Any(SeverityModerate))
	assert.False(t, analysis.Any(SeveritySevere))
	assert.Equal(t, SeverityModerate, analysis.Max())

	empty := Analysis{}
	assert.False(t, empty.Any(SeverityMild))
	assert.Equal(t, SeverityNone, empty.Max())
}

func TestLexiconClassifier_CleanText(t *testing.T) {
	t.Parallel()

	classifier := NewLexiconClassifier()

	for _, text := range []string{
		"my-project",
		"kebab-case",
		"lowercase",
		"50-name",
		"235235",
		"another-valid-project-name",
		"x",
	} {
		analysis := classifier.Classify(text)
		assert.False(t, analysis.Any(SeverityMild),
			"expected %q to be clean, got %v", text, analysis)
	}
}

func TestLexiconClassifier_FlaggedTerms(t *testing.T) {
	t.Parallel()

	classifier := NewLexiconClassifier()

	testCases := []struct {
		text     string
		category Category
		minimum  Severity
	}{
		{"test-condom-condom", CategorySexual, SeverityModerate},
		{"some-shit-name", CategoryProfane, SeverityModerate},
		{"fuck", CategoryProfane, SeveritySevere},
		{"damn-project", CategoryProfane, SeverityMild},
		{"nazi-site", CategoryInappropriate, SeverityModerate},
	}

	for _, tc := range testCases {
		analysis := classifier.Classify(tc.text)
		assert.True(t, analysis[tc.category].AtLeast(tc.minimum),
			"expected %q to score at least %s in %s, got %v",
			tc.text, tc.minimum, tc.category, analysis)
	}
}

func TestLexiconClassifier_ObfuscatedTerms(t *testing.T) {
	t.Parallel()

	classifier := NewLexiconClassifier()

	// Leet-speak and separator tricks must not bypass the lexicon.
	for _, text := range []string{
		"sh1t",
		"fu-ck",
		"c0ndom",
	} {
		analysis := classifier.Classify(text)
		assert.True(t, analysis.Any(SeverityModerate),
			"expected obfuscated %q to be flagged, got %v", text, analysis)
	}
}

func TestLexiconClassifier_FalsePositives(t *testing.T) {
	t.Parallel()

	classifier := NewLexiconClassifier()

	// Benign words containing lexicon terms as substrings.
	for _, text := range []string{
		"myassets",
		"dachterrasse",
		"classics",
		"grass-field",
		"sussex-office",
	} {
		analysis := classifier.Classify(text)
		assert.False(t, analysis.Any(SeverityModerate),
			"expected %q not to be flagged at moderate, got %v", text, analysis)
	}
}

func TestLexiconClassifier_ConcurrentUse(t *testing.T) {
	t.Parallel()

	classifier := NewLexiconClassifier()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				classifier.Classify("kebab-case")
				classifier.Classify("test-condom-condom")
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
