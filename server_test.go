package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func test_server() *Server {
	return NewServer(":0", websocket.Upgrader{})
}

func post_json(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleCalculate(t *testing.T) {
	w := post_json(t, test_server().handle_calculate, reference_input())
	require.Equal(t, http.StatusOK, w.Code)

	var results CombustionResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.InDelta(t, 17668.0, results.Pcs, 60.0)
	assert.Greater(t, results.OutletGasTemp, 500.0)
}

func TestHandleCalculateDefaultInput(t *testing.T) {
	// an empty body runs the reference bagasse case
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	test_server().handle_calculate(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var results CombustionResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, 90.0, results.RealEfficiency)
}

func TestHandleCalculateRejectsInvalidInput(t *testing.T) {
	in := reference_input()
	in.Moisture = 90.0

	w := post_json(t, test_server().handle_calculate, in)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "moisture")
}

func TestHandleSensitivity(t *testing.T) {
	req := SensitivityRequest{
		Parameter:    "excess_air",
		RangePercent: 30.0,
		NumPoints:    5,
		Input:        reference_input(),
	}
	w := post_json(t, test_server().handle_sensitivity, req)
	require.Equal(t, http.StatusOK, w.Code)

	var analysis ParameterAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.Equal(t, ParameterExcessAir, analysis.Parameter)
	assert.Len(t, analysis.Results.ParameterValues, 5)
}

func TestHandleSensitivityRejectsUnknownParameter(t *testing.T) {
	req := SensitivityRequest{Parameter: "sulfur", NumPoints: 5}
	w := post_json(t, test_server().handle_sensitivity, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleOptimize(t *testing.T) {
	req := OptimizationRequest{
		Parameter: "flow_rate",
		Objective: "velocity",
		Input:     reference_input(),
	}
	w := post_json(t, test_server().handle_optimize, req)
	require.Equal(t, http.StatusOK, w.Code)

	var outcome OptimizationOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.True(t, outcome.Feasible)
	assert.InDelta(t, 15.0, outcome.Results.GasVelocity, 0.3)
}

func TestHandleCities(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	test_server().handle_cities(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cities []City
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cities))
	assert.NotEmpty(t, cities)
}

func TestServeWebsocket(t *testing.T) {
	server := NewServer(":0", websocket.Upgrader{})
	ts := httptest.NewServer(server.routes())
	defer ts.Close()

	url := "ws" + ts.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	content, err := json.Marshal(reference_input())
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(&Msg{Type: "calculate", Content: content}))

	var reply Msg
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "results", reply.Type)

	var results CombustionResults
	require.NoError(t, json.Unmarshal(reply.Content, &results))
	assert.InDelta(t, 17668.0, results.Pcs, 60.0)
}

func TestServeWebsocketUnknownType(t *testing.T) {
	server := NewServer(":0", websocket.Upgrader{})
	ts := httptest.NewServer(server.routes())
	defer ts.Close()

	url := "ws" + ts.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(&Msg{Type: "explode"}))

	var reply Msg
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply.Type)
}
