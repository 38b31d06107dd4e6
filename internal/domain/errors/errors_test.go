package errors

import (
	"net/http"
	"testing"

	"statistics/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("latitude", 90.0001)

	assert.Equal(t, "invalid latitude 90.0001", err.Error())
	assert.Equal(t, "latitude", err.Param())
	assert.Equal(t, 90.0001, err.Value())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "INVALID_ARGUMENT", err.ErrorCode())
	assert.Equal(t, err.Error(), err.Details())
}

func TestInvalidArgumentError_MatchesSentinelThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(NewInvalidArgumentError("longitude", -200.0), "create remark statistics")

	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))
	assert.False(t, errors.Is(wrapped, ErrValidationFailed))

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "invalid longitude -200", appErr.Details())
}

func TestBaseError_WithDetails(t *testing.T) {
	withDetails := ErrRemarkStatisticsNotFound.WithDetails("remark 42")

	assert.Equal(t, "remark 42", withDetails.Details())
	assert.Empty(t, ErrRemarkStatisticsNotFound.Details())
	assert.Equal(t, ErrRemarkStatisticsNotFound.ErrorCode(), withDetails.ErrorCode())
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse(ErrRemarkStatisticsNotFound, "req-1")

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "REMARK_STATISTICS_NOT_FOUND", resp.Error.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, "req-1", resp.Meta.RequestID)

	assert.Nil(t, NewResponse(ErrInternalError, "").Meta)
}

func TestBaseError_IsMatchesByErrorCode(t *testing.T) {
	detailed := ErrRemarkStatisticsNotFound.WithDetails("6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10")
	wrapped := errors.Wrap(detailed, "failed to resolve remark")

	assert.True(t, errors.Is(wrapped, ErrRemarkStatisticsNotFound))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(ErrValidationFailed, ErrInvalidArgument))
}
