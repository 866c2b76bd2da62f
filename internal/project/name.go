// Package project defines the validated project name type and the policy
// it is checked against. Project names are used as hostname labels and
// filesystem directory names, so they must conform to a strict subset of
// the IETF RFC 1123 host-label grammar. Host segments are technically
// case-insensitive, but the filesystem is not, so names are restricted to
// lower case. Names must also be free of profanity and must not collide
// with a small set of reserved platform words.
package project

// file: internal/project/name.go

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/d4ckard/shuttle/internal/moderation"
)

// rules is the fixed, user-visible policy text. It enumerates every rule
// but deliberately not which one a given candidate failed.
const rules = `invalid project name; project names must:
 1. only contain lowercase alphanumeric characters or dashes '-'
 2. not start or end with a dash
 3. not be empty
 4. be shorter than 64 characters
 5. not contain any profanities
 6. not be a reserved word`

// ErrInvalidName is returned for any candidate that fails one or more
// policy checks. It carries no payload: callers learn pass/fail only, so
// the error cannot be used as a probing oracle for individual rules.
var ErrInvalidName = errors.New(rules)

// Name is a validated project name. Every live Name satisfies IsValid;
// the type is immutable after construction and the only constructors are
// New, Parse, and the text-decoding path, all of which run full validation.
type Name struct {
	value string
}

// reservedNames is the process-wide set of platform words that must never
// be usable as project names, to prevent impersonation of or routing
// collisions with system-reserved subdomains. Computed once on first use,
// read-only thereafter.
var reservedNames = sync.OnceValue(func() map[string]struct{} {
	return map[string]struct{}{
		"shuttleapp": {},
		"shuttle":    {},
		"console":    {},
		"unstable":   {},
		"staging":    {},
	}
})

// classifier is the process-wide content classifier. The validator depends
// only on the moderation.Classifier interface; the threshold policy
// (reject at moderate or higher in any category) lives here, not in the
// classifier.
var classifier = sync.OnceValue(func() moderation.Classifier {
	return moderation.NewLexiconClassifier()
})

// New validates candidate and returns it wrapped as a Name. The stored
// value is an exact copy of the input; validation never trims, folds, or
// substitutes characters. On failure it returns ErrInvalidName.
func New(candidate string) (Name, error) {
	if !IsValid(candidate) {
		return Name{}, ErrInvalidName
	}
	return Name{value: candidate}, nil
}

// Parse is the parse-from-string form of New.
func Parse(s string) (Name, error) {
	return New(s)
}

// IsValid reports whether candidate satisfies the full naming policy.
// It is a pure predicate with no side effects beyond first-use
// initialization of the reserved set and classifier.
//
// The checks form an ordered conjunction; order only affects performance
// (the moderation scan is the expensive step and runs last), never the
// outcome.
func IsValid(candidate string) bool {
	return candidate != "" &&
		len(candidate) < 64 &&
		!strings.HasPrefix(candidate, "-") &&
		!strings.HasSuffix(candidate, "-") &&
		!isReserved(candidate) &&
		isHostLabel(candidate) &&
		isDecent(candidate)
}

// Rules returns the fixed human-readable policy text shown to users when
// a candidate is rejected.
func Rules() string {
	return rules
}

// isReserved checks membership in the reserved-word set. The match is
// exact and case-sensitive; reserved words are stored lowercase and the
// character-class rule already restricts accepted input to lowercase.
func isReserved(candidate string) bool {
	_, ok := reservedNames()[candidate]
	return ok
}

// isHostLabel checks that every byte is a lowercase ASCII letter, an
// ASCII digit, or a dash. This implicitly forbids uppercase, Unicode,
// whitespace, dots, underscores, and all other punctuation.
func isHostLabel(candidate string) bool {
	for i := 0; i < len(candidate); i++ {
		b := candidate[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= '0' && b <= '9':
		case b == '-':
		default:
			return false
		}
	}
	return true
}

// isDecent runs the moderation scan against the original candidate, not a
// sanitized copy, and rejects at moderate-or-higher severity in any
// category.
func isDecent(candidate string) bool {
	analysis := classifier().Classify(candidate)
	return !analysis.Any(moderation.SeverityModerate)
}
