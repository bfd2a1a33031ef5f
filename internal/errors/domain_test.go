package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorIs(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("request content: %w", ErrUpstream.Wrap(cause))

	assert.True(t, stderrors.Is(wrapped, ErrUpstream))
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.False(t, stderrors.Is(wrapped, ErrMissingCredential))
}

func TestDomainErrorMessage(t *testing.T) {
	assert.Equal(t, "generative API request failed", ErrUpstream.Error())
	assert.Equal(t, "generative API request failed: status 503", ErrUpstream.Wrap(stderrors.New("status 503")).Error())

	custom := ErrInputNotFound.WithMessage("input abc not found")
	assert.Equal(t, "input abc not found", custom.Error())
	assert.True(t, stderrors.Is(custom, ErrInputNotFound))
}

func TestDomainErrorAs(t *testing.T) {
	var target *DomainError
	err := fmt.Errorf("outer: %w", ErrGenerationFailed.Wrap(stderrors.New("db down")))
	assert.True(t, stderrors.As(err, &target))
	assert.Equal(t, "GENERATION_FAILED", target.Code)
}
