package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrStorageAbsent,
		ErrStorageCorrupt,
		ErrParse,
		ErrNetwork,
		ErrServer,
		ErrDecode,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quote",
			id:          "123",
			expectedMsg: `quote with id "123" not found`,
		},
		{
			name:        "with entity only",
			entity:      "quote",
			id:          "",
			expectedMsg: "quote not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)
			assert.True(t, IsNotFound(err))

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("text", "please enter a quote")

	assert.Equal(t, "validation failed for text: please enter a quote", err.Error())
	assert.True(t, IsValidation(err))

	err = NewValidationError("", "bad input")
	assert.Equal(t, "validation failed: bad input", err.Error())
}

func TestStorageErrors(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewStorageCorruptError("quotes", cause)

	assert.True(t, IsStorageCorrupt(err))
	assert.False(t, IsStorageAbsent(err))
	assert.Contains(t, err.Error(), `"quotes"`)
	assert.Contains(t, err.Error(), cause.Error())

	wrapped := fmt.Errorf("loading quotes: %w", ErrStorageAbsent)
	assert.True(t, IsStorageAbsent(wrapped))
}

func TestParseError(t *testing.T) {
	err := NewParseError("quotes.json", errors.New("invalid character"))

	assert.True(t, IsParse(err))
	assert.Equal(t, "invalid JSON in quotes.json: invalid character", err.Error())
}

func TestRemoteErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{
			name:     "network",
			err:      NewNetworkError("remote", "pull", errors.New("connection refused")),
			sentinel: ErrNetwork,
			msg:      "remote: pull failed: connection refused",
		},
		{
			name:     "server with message",
			err:      NewServerError("remote", "push", 503, "maintenance"),
			sentinel: ErrServer,
			msg:      "remote: push returned HTTP 503: maintenance",
		},
		{
			name:     "server without message",
			err:      NewServerError("remote", "pull", 404, ""),
			sentinel: ErrServer,
			msg:      "remote: pull returned HTTP 404",
		},
		{
			name:     "decode",
			err:      NewDecodeError("remote", "pull", errors.New("not an array")),
			sentinel: ErrDecode,
			msg:      "remote: decoding pull response: not an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, IsRemote(tt.err))
			assert.True(t, IsRemote(fmt.Errorf("sync: %w", tt.err)))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}

	assert.False(t, IsRemote(ErrParse))
}

func TestServerError_ExposesStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewServerError("remote", "push", 500, ""))

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 500, serverErr.Status)
}

func TestIsUnavailable(t *testing.T) {
	disabled := fmt.Errorf("remote API is disabled: %w", ErrUnavailable)

	assert.True(t, IsUnavailable(disabled))
	assert.True(t, IsUnavailable(fmt.Errorf("pull: %w", disabled)))
	assert.False(t, IsUnavailable(ErrNetwork))
	assert.False(t, IsRemote(disabled))
}
