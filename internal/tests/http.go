package tests

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONResponse checks the status code and compares the JSON body with
// the JSON encoding of expected.
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, status int, expected any) {
	t.Helper()

	assert.Equal(t, status, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	want, err := json.Marshal(expected)
	require.NoError(t, err)

	assert.JSONEq(t, string(want), recorder.Body.String())
}
