package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK_MergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, http.StatusCreated, "created", Payload{"token": "abc", "success": false})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"], "envelope fields win over payload")
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, "abc", body["token"])
}

func TestFail_WithAndWithoutError(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusInternalServerError, "Internal server error", errors.New("boom"))

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "boom", body["error"])

	rec = httptest.NewRecorder()
	Fail(rec, http.StatusNotFound, "Blog not found", nil)

	body = decode(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, hasErr := body["error"]
	assert.False(t, hasErr)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "A", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	require.ErrorIs(t, DecodeJSON(r, &dst), ErrInvalidBody)
}
