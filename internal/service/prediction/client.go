package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
)

// Client issues prediction requests against the remote model service. One
// POST per prediction, no retry.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict serializes the eleven patient fields as the request body and
// returns the parsed result. Failures are tagged: a non-2xx status maps to
// an UpstreamError carrying the status code, a 2xx body without the success
// tag maps to an application error. Callers must handle both arms.
func (c *Client) Predict(ctx context.Context, input *model.PatientInput) (*model.PredictionResult, error) {
	requestBody, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach model service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewUpstreamTransport(resp.StatusCode)
	}

	var result model.PredictionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode model service response: %w", err)
	}

	if result.Status != "success" {
		return nil, apperrors.NewUpstreamApplication(result.Status, nil)
	}

	return &result, nil
}

// Ping reports whether the model service endpoint is reachable. Used by the
// readiness check.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
