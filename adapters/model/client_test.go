package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testFeatures() []float64 {
	return []float64{90, 42, 43, 20.8, 82, 6.5, 202.9}
}

func TestClient_Predict(t *testing.T) {
	var gotBody predictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"recommended_crop": "rice"})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})

	label, err := client.Predict(context.Background(), testFeatures())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if label != "rice" {
		t.Errorf("label = %q, want rice", label)
	}

	if len(gotBody.Features) != 7 {
		t.Fatalf("Model should receive 7 features, got %d", len(gotBody.Features))
	}
	if gotBody.Features[3] != 20.8 {
		t.Errorf("temperature should be the fourth feature, got %v", gotBody.Features[3])
	}
	if len(gotBody.Columns) != 7 || gotBody.Columns[0] != "N" || gotBody.Columns[6] != "rainfall" {
		t.Errorf("Unexpected column order: %v", gotBody.Columns)
	}
}

func TestClient_Predict_CustomLabelPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prediction": {"label": "coffee"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL, LabelPath: "prediction.label"})

	label, err := client.Predict(context.Background(), testFeatures())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if label != "coffee" {
		t.Errorf("label = %q, want coffee", label)
	}
}

func TestClient_Predict_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})

	if _, err := client.Predict(context.Background(), testFeatures()); err == nil {
		t.Fatal("Expected error for 500 response")
	}
}

func TestClient_Predict_MissingLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"something_else": true}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})

	if _, err := client.Predict(context.Background(), testFeatures()); err == nil {
		t.Fatal("Expected error when label path is absent")
	}
}

func TestClient_Predict_WrongFeatureCount(t *testing.T) {
	client := NewClient(ClientConfig{URL: "http://unused"})

	if _, err := client.Predict(context.Background(), []float64{1, 2, 3}); err == nil {
		t.Fatal("Expected error for short feature vector")
	}
}
