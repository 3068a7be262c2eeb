package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"missing source", ErrMissingSource},
		{"malformed topology", ErrMalformedTopology},
		{"duplicate schema", ErrDuplicateSchema},
		{"unresolved reference", ErrUnresolvedReference},
		{"unsupported payload kind", ErrUnsupportedPayloadKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrapf(tt.sentinel, "topic %q in file %s", "specification-created", "topics/specification-created.yaml")
			assert.True(t, Is(wrapped, tt.sentinel))
			assert.Contains(t, wrapped.Error(), "specification-created")
		})
	}
}

func TestIsMalformedTopology(t *testing.T) {
	assert.False(t, IsMalformedTopology(nil))
	assert.False(t, IsMalformedTopology(New("unrelated")))
	assert.True(t, IsMalformedTopology(NewMalformedTopology("topic %s missing required field: %s", "x.yaml", "payload")))
}

func TestIsUnresolvedReference(t *testing.T) {
	assert.False(t, IsUnresolvedReference(nil))
	assert.True(t, IsUnresolvedReference(Wrap(ErrUnresolvedReference, "topic 'a' references unknown event schema: B")))
}
