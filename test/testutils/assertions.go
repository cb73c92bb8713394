// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"encoding/json"
	stderrors "errors"
	"net/http/httptest"
	"testing"

	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertAppError asserts that err is an AppError carrying code and returns it
func AssertAppError(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) *errors.AppError {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected an AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code, msgAndArgs...)
	return appErr
}

// APIEnvelope mirrors the JSON envelope written by the HTTP handlers
type APIEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// DecodeEnvelope asserts the status code and decodes the response envelope
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) APIEnvelope {
	t.Helper()
	require.Equal(t, wantStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var env APIEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body is not an API envelope: %s", rec.Body.String())
	return env
}

// DecodeData decodes the envelope's data into out
func DecodeData(t *testing.T, env APIEnvelope, out interface{}) {
	t.Helper()
	require.True(t, env.Success, "expected a successful response")
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// AssertErrorCode asserts a failed envelope with the given code
func AssertErrorCode(t *testing.T, env APIEnvelope, code errors.ErrorCode) {
	t.Helper()
	assert.False(t, env.Success)
	require.NotNil(t, env.Error, "expected an error object")
	assert.Equal(t, string(code), env.Error.Code)
}
