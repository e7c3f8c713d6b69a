package main_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DriveSync-Logistics/service-dispatch/internal/application"
	"github.com/DriveSync-Logistics/service-dispatch/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv wires up the full service stack in-process, no external
// infrastructure needed.
type testEnv struct {
	t      *testing.T
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := application.NewDispatchService(5000, zap.NewNop())
	router := handler.NewRouter(service, zap.NewNop(), []string{"*"})
	return &testEnv{t: t, router: router}
}

// do performs a JSON request against the in-process router.
func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// submitResponse is the intake endpoint's response payload.
type submitResponse struct {
	ClientID   string                 `json:"client_id"`
	ClientName string                 `json:"client_name"`
	Request    application.RequestDTO `json:"request"`
}
