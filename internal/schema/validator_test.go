// file: internal/schema/validator_test.go
package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d4ckard/shuttle/internal/logging"
)

func newInitializedValidator(t *testing.T) *Validator {
	t.Helper()

	v := NewValidator(logging.GetNoopLogger())
	require.NoError(t, v.Initialize(context.Background()))
	require.True(t, v.IsInitialized())
	return v
}

func TestValidator_Initialize(t *testing.T) {
	t.Parallel()

	v := NewValidator(nil)
	assert.False(t, v.IsInitialized())

	require.NoError(t, v.Initialize(context.Background()))
	assert.True(t, v.IsInitialized())
	assert.Greater(t, v.GetCompileDuration().Nanoseconds(), int64(0))

	// Second call is a no-op.
	require.NoError(t, v.Initialize(context.Background()))
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := newInitializedValidator(t)
	ctx := context.Background()

	testCases := []struct {
		name        string
		body        string
		expectError bool
		parseError  bool
	}{
		{
			name: "valid request body",
			body: `{"name": "my-project"}`,
		},
		{
			name: "name may be any string; policy checks happen later",
			body: `{"name": "NOT a hostname label"}`,
		},
		{
			name:        "missing name field",
			body:        `{}`,
			expectError: true,
		},
		{
			name:        "name has wrong type",
			body:        `{"name": 42}`,
			expectError: true,
		},
		{
			name:        "unexpected extra field",
			body:        `{"name": "ok", "extra": true}`,
			expectError: true,
		},
		{
			name:        "not an object",
			body:        `"just a string"`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			body:        `{"name": `,
			expectError: true,
			parseError:  true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(ctx, []byte(tc.body))
			if !tc.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.parseError, IsParseError(err))
		})
	}
}

func TestValidator_ValidateBeforeInitialize(t *testing.T) {
	t.Parallel()

	v := NewValidator(nil)
	err := v.Validate(context.Background(), []byte(`{"name": "ok"}`))
	assert.Error(t, err)
}
