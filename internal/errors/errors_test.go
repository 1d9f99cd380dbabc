package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()
		err := NotFound("config not found")
		assert.Equal(t, "config not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")
		err := Wrap(cause, ErrCodeInternal, "load config")
		assert.Equal(t, "load config: connection refused", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrapf(cause, ErrCodeInternal, "wrapped %d times", 1)
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  ErrorCode
	}{
		{"not found", NotFoundf("config %s not found", "abc"), IsNotFound, ErrCodeNotFound},
		{"conflict", Conflict("run already in progress"), IsConflict, ErrCodeConflict},
		{"validation", ValidationField("url", "url is required"), IsValidation, ErrCodeValidation},
		{"unsupported strategy", UnsupportedStrategyf("unsupported ingestion strategy: %s", "FEED"), IsUnsupportedStrategy, ErrCodeUnsupportedStrategy},
		{"internal", Internal("unexpected"), IsInternal, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, GetCode(tt.err))
			// wrapped errors still match
			assert.True(t, tt.check(fmt.Errorf("outer: %w", tt.err)))
		})
	}
}

func TestGetCode_NonAppError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %s", "too"))
}
