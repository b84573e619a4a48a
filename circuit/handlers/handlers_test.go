package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phoenix-social/circuitguard/circuit"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handlersFixture() (*Handlers, *echo.Echo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := circuit.NewEngine(circuit.DefaultCircuitConfig(), logger)
	return NewHandlers(eng), echo.New()
}

func TestPostActionAndStatus(t *testing.T) {
	assert := assert.New(t)
	h, e := handlersFixture()

	body := `{"userID":1,"targetID":2,"actionType":"block"}`
	req := httptest.NewRequest(http.MethodPost, "/action", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	assert.NoError(h.PostAction(e.NewContext(req, rec)))
	assert.Equal(200, rec.Code)

	var decision circuit.CircuitDecision
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &decision))
	assert.True(decision.CountAction)
	assert.False(decision.CircuitTripped)

	req = httptest.NewRequest(http.MethodGet, "/status?targetID=2", nil)
	rec = httptest.NewRecorder()
	assert.NoError(h.GetStatus(e.NewContext(req, rec)))
	assert.Equal(200, rec.Code)

	var status StatusResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(uint64(2), status.TargetID)
	assert.False(status.State.IsTripped)
}

func TestPostActionValidation(t *testing.T) {
	assert := assert.New(t)
	h, e := handlersFixture()

	for _, body := range []string{
		`{"userID":1,"targetID":2,"actionType":"favorite"}`,
		`{"userID":0,"targetID":2,"actionType":"block"}`,
		`{"userID":1,"targetID":0,"actionType":"block"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/action", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		assert.NoError(h.PostAction(e.NewContext(req, rec)))
		assert.Equal(400, rec.Code)
	}
}

func TestGetStatusValidation(t *testing.T) {
	assert := assert.New(t)
	h, e := handlersFixture()

	req := httptest.NewRequest(http.MethodGet, "/status?targetID=abc", nil)
	rec := httptest.NewRecorder()
	assert.NoError(h.GetStatus(e.NewContext(req, rec)))
	assert.Equal(400, rec.Code)
}

func TestHealth(t *testing.T) {
	assert := assert.New(t)
	h, e := handlersFixture()

	req := httptest.NewRequest(http.MethodGet, "/_health", nil)
	rec := httptest.NewRecorder()
	assert.NoError(h.Health(e.NewContext(req, rec)))
	assert.Equal(200, rec.Code)

	var status HealthStatus
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal("ok", status.Status)
}
