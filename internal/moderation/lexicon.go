// file: internal/moderation/lexicon.go
package moderation

import (
	goaway "github.com/TwiN/go-away"
)

// lexiconBucket groups the terms of one category at one severity behind a
// profanity detector. The detector handles obfuscation (leet speak, special
// characters, accents) so disguised spellings of a term still match.
type lexiconBucket struct {
	category Category
	severity Severity
	detector *goaway.ProfanityDetector
}

// LexiconClassifier is the default Classifier implementation. It scores text
// against a fixed lexicon of terms bucketed by category and severity.
// The lexicon is frozen at construction; classification is deterministic
// and safe for concurrent use.
type LexiconClassifier struct {
	buckets []lexiconBucket
}

// Ensure LexiconClassifier implements the capability interface.
var _ Classifier = (*LexiconClassifier)(nil)

// falsePositives lists benign words that contain a lexicon term as a
// substring. Detectors strip these before matching, so "myassets" or
// "allspice" never trip the filter. The list is shared by all buckets.
var falsePositives = []string{
	"analysis",
	"analytics",
	"assassin",
	"assess",
	"assets",
	"assist",
	"auspicious",
	"banal",
	"bass",
	"canal",
	"class",
	"coarse",
	"conspicuous",
	"despicable",
	"drape",
	"essex",
	"glass",
	"grape",
	"grass",
	"hearse",
	"hello",
	"mass",
	"middlesex",
	"parapet",
	"parse",
	"pass",
	"rehearse",
	"retardant",
	"scrape",
	"seaweed",
	"sextet",
	"sexton",
	"shell",
	"spice",
	"spicy",
	"sparse",
	"suspicious",
	"sussex",
	"thorny",
	"trapez",
	"tweed",
}

// defaultLexicon holds the term buckets the default classifier is built from.
// Terms are lowercase; matching is substring-based after sanitization.
var defaultLexicon = []struct {
	category Category
	severity Severity
	terms    []string
}{
	{CategoryProfane, SeveritySevere, []string{
		"cocksucker", "cunt", "fuck", "motherfucker",
	}},
	{CategoryProfane, SeverityModerate, []string{
		"asshole", "bastard", "bitch", "bollocks", "dickhead",
		"prick", "shit", "twat", "wanker",
	}},
	{CategoryProfane, SeverityMild, []string{
		"arse", "crap", "damn", "hell", "piss",
	}},
	{CategorySexual, SeveritySevere, []string{
		"blowjob", "bukkake", "cumshot", "fellatio",
	}},
	{CategorySexual, SeverityModerate, []string{
		"boobs", "condom", "dildo", "hentai", "horny", "nipple",
		"nude", "orgasm", "penis", "porn", "sex", "tits", "vagina",
	}},
	{CategorySexual, SeverityMild, []string{
		"kinky", "sexy",
	}},
	{CategoryOffensive, SeveritySevere, []string{
		"chink", "faggot", "kike", "nigga", "nigger", "spic",
		"tranny", "wetback",
	}},
	{CategoryOffensive, SeverityModerate, []string{
		"bimbo", "dyke", "retard", "slut", "whore",
	}},
	{CategoryInappropriate, SeveritySevere, []string{
		"rape", "raping",
	}},
	{CategoryInappropriate, SeverityModerate, []string{
		"hitler", "jihad", "nazi", "terrorist",
	}},
	{CategoryInappropriate, SeverityMild, []string{
		"booze", "weed",
	}},
}

// NewLexiconClassifier builds a classifier over the default lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	buckets := make([]lexiconBucket, 0, len(defaultLexicon))
	for _, entry := range defaultLexicon {
		detector := goaway.NewProfanityDetector().
			WithCustomDictionary(entry.terms, falsePositives, nil)
		buckets = append(buckets, lexiconBucket{
			category: entry.category,
			severity: entry.severity,
			detector: detector,
		})
	}
	return &LexiconClassifier{buckets: buckets}
}

// Classify scores text against every bucket and returns the strongest
// severity found per category.
func (c *LexiconClassifier) Classify(text string) Analysis {
	analysis := make(Analysis)
	for _, bucket := range c.buckets {
		if bucket.severity <= analysis[bucket.category] {
			// A stronger bucket of this category already matched.
			continue
		}
		if bucket.detector.IsProfane(text) {
			analysis[bucket.category] = bucket.severity
		}
	}
	return analysis
}
