package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropsense/app"
	"cropsense/domain/knowledge"
	"cropsense/internal/suitability"
)

type stubModel struct {
	label string
	err   error
}

func (m *stubModel) Predict(context.Context, []float64) (string, error) {
	return m.label, m.err
}

func newTestServer(t *testing.T, model *stubModel) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := knowledge.NewRegistry()
	require.NoError(t, err)

	service := app.NewRecommendationService(model, registry, suitability.DefaultThresholds(), 2)
	return NewServer(service, registry, 100)
}

func doJSON(server *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

const validBody = `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`

func TestHandlePredict_Success(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := doJSON(server, http.MethodPost, "/predict", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "rice", response["recommended_crop"])
	assert.NotEmpty(t, response["explanations"])
}

func TestHandlePredict_MissingFields(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := doJSON(server, http.MethodPost, "/predict", `{"N":90,"temperature":"warm"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// Every missing or non-numeric field, in canonical order.
	assert.Equal(t, []string{"P", "K", "temperature", "humidity", "ph", "rainfall"}, response.MissingFields)
}

func TestHandlePredict_NotJSON(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := doJSON(server, http.MethodPost, "/predict", "not json at all")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePredict_ModelFailure(t *testing.T) {
	server := newTestServer(t, &stubModel{err: errors.New("model down")})

	w := doJSON(server, http.MethodPost, "/predict", validBody)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "prediction failed")
	assert.NotContains(t, w.Body.String(), "model down", "model internals must stay opaque")
}

func uploadCSV(t *testing.T, server *Server, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/batch_predict", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHandleBatchPredict_RowIsolation(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	csv := "N,P,K,temperature,humidity,ph,rainfall,plot\n" +
		"90,42,43,20.8,82,6.5,202.9,a\n" +
		"85,58,,21.7,80,7.0,226.6,b\n" +
		"60,55,44,23.0,82,7.0,263.9,c\n"

	w := uploadCSV(t, server, "fields.csv", csv)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		BatchID string               `json:"batch_id"`
		Count   int                  `json:"count"`
		Results []app.BatchRowResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.NotEmpty(t, response.BatchID)
	require.Equal(t, 3, response.Count)

	assert.True(t, response.Results[0].Ok())
	assert.True(t, response.Results[2].Ok())
	assert.False(t, response.Results[1].Ok(), "row with empty K must fail alone")
	assert.Equal(t, []string{"K"}, response.Results[1].MissingFields)

	assert.Equal(t, "a", response.Results[0].Row["plot"], "extra columns pass through")
	assert.Equal(t, "rice", response.Results[0].Row["recommended_crop"])
}

func TestHandleBatchPredict_MissingColumns(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := uploadCSV(t, server, "fields.csv", "N,P,K\n90,42,43\n")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		MissingColumns []string `json:"missing_columns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"temperature", "humidity", "ph", "rainfall"}, response.MissingColumns)
}

func TestHandleBatchPredict_NoFile(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	req := httptest.NewRequest(http.MethodPost, "/batch_predict", nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file")
}

func TestHandleCrops(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := doJSON(server, http.MethodGet, "/crops", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 22, response.Count)

	w = doJSON(server, http.MethodGet, "/crops/RICE", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"rice"`)

	w = doJSON(server, http.MethodGet, "/crops/dragonfruit", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleHome(t *testing.T) {
	server := newTestServer(t, &stubModel{label: "rice"})

	w := doJSON(server, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Crop Recommendation API")
}
