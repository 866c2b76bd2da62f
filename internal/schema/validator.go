// Package schema handles loading, compiling, and validating API request
// bodies against the embedded JSON schema.
//
// The validator orchestrates the schema handling process:
// 1. Loading: schema content is read from the embedded file
// 2. Compilation: the schema is compiled once for validation use
// 3. Validation: incoming request bodies are validated against the compiled schema
//
// The compiled schema is held in memory with appropriate thread safety, and
// the validator records load/compile durations for the status endpoint.
package schema

// file: internal/schema/validator.go

import (
	"context"
	_ "embed" // Required for go:embed.
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/d4ckard/shuttle/internal/logging"
)

//go:embed request_schema.json
var embeddedSchemaContent []byte

// requestSchemaResource is the resource name the compiler registers the
// embedded schema under.
const requestSchemaResource = "request_schema.json"

// ValidatorInterface defines the methods needed for request validation.
type ValidatorInterface interface {
	Initialize(ctx context.Context) error
	Validate(ctx context.Context, data []byte) error
	IsInitialized() bool
	GetCompileDuration() time.Duration
}

// Validator handles compiling the embedded request schema and validating
// incoming request bodies against it.
type Validator struct {
	mu              sync.RWMutex
	compiled        *jsonschema.Schema
	initialized     bool
	compileDuration time.Duration
	logger          logging.Logger
}

// Ensure Validator implements the interface.
var _ ValidatorInterface = (*Validator)(nil)

// NewValidator creates a new Validator instance.
func NewValidator(logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Validator{logger: logger}
}

// Initialize compiles the embedded schema. It is safe to call more than
// once; subsequent calls are no-ops.
func (v *Validator) Initialize(_ context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initialized {
		v.logger.Debug("Validator already initialized, skipping compilation.")
		return nil
	}

	start := time.Now()

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if err := compiler.AddResource(requestSchemaResource, strings.NewReader(string(embeddedSchemaContent))); err != nil {
		return errors.Wrap(err, "failed to add embedded request schema resource")
	}

	compiled, err := compiler.Compile(requestSchemaResource)
	if err != nil {
		return errors.Wrap(err, "failed to compile embedded request schema")
	}

	v.compiled = compiled
	v.initialized = true
	v.compileDuration = time.Since(start)

	v.logger.Debug("Request schema compiled.",
		"duration", v.compileDuration.String())

	return nil
}

// Validate checks data against the compiled request schema. It returns an
// error both for malformed JSON and for schema violations; the two cases
// are distinguishable via IsParseError.
func (v *Validator) Validate(_ context.Context, data []byte) error {
	v.mu.RLock()
	compiled := v.compiled
	initialized := v.initialized
	v.mu.RUnlock()

	if !initialized {
		return errors.New("validator not initialized")
	}

	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return errors.Mark(errors.Wrap(err, "request body is not valid JSON"), errParse)
	}

	if err := compiled.Validate(instance); err != nil {
		return errors.Wrap(err, "request body does not match schema")
	}

	return nil
}

// IsInitialized reports whether the schema has been compiled.
func (v *Validator) IsInitialized() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.initialized
}

// GetCompileDuration returns how long schema compilation took.
func (v *Validator) GetCompileDuration() time.Duration {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.compileDuration
}

// errParse marks validation failures caused by malformed JSON rather
// than schema violations.
var errParse = errors.New("json parse error")

// IsParseError reports whether err stems from malformed JSON input as
// opposed to a schema violation.
func IsParseError(err error) bool {
	return errors.Is(err, errParse)
}
