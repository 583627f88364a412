package handler

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, apiPath, nil)
	req = req.WithContext(logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	writeJSON(rec, req, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "failed to encode response")
	assert.Contains(t, buf.String(), "unsupported value")
}

func TestWriteErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, apiPath, nil)
	rec := httptest.NewRecorder()

	notFoundHandler(rec, req)

	assertError(t, rec, http.StatusNotFound, "Not found")
}
