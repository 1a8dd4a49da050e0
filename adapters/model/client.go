package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"cropsense/domain/agronomy"
)

// ClientConfig holds connection settings for the model service.
type ClientConfig struct {
	// URL is the full prediction endpoint.
	URL string `json:"url"`
	// Timeout bounds one prediction round trip.
	Timeout time.Duration `json:"timeout"`
	// LabelPath is the gjson path of the crop label in the response body.
	LabelPath string `json:"label_path"`
}

// DefaultClientConfig returns sensible defaults for everything but URL.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:   10 * time.Second,
		LabelPath: "recommended_crop",
	}
}

// Client calls the trained crop classification model over HTTP. It
// implements ports.ModelPort.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a model client.
func NewClient(config ClientConfig) *Client {
	if config.LabelPath == "" {
		config.LabelPath = DefaultClientConfig().LabelPath
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultClientConfig().Timeout
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// predictRequest is the wire payload sent to the model service.
type predictRequest struct {
	Features []float64 `json:"features"`
	Columns  []string  `json:"columns"`
}

// Predict sends the ordered feature vector and extracts the predicted
// crop label from the response.
func (c *Client) Predict(ctx context.Context, features []float64) (string, error) {
	if len(features) != len(agronomy.FeatureOrder) {
		return "", fmt.Errorf("expected %d features, got %d", len(agronomy.FeatureOrder), len(features))
	}

	payload, err := json.Marshal(predictRequest{
		Features: features,
		Columns:  agronomy.FeatureColumns(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(body))
	}

	label := gjson.GetBytes(body, c.config.LabelPath)
	if !label.Exists() || label.String() == "" {
		return "", fmt.Errorf("label path %q not found in model response", c.config.LabelPath)
	}

	return label.String(), nil
}
