// services/api_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinshop/admin_console/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

// APIClient handles interactions with the Vinshop backend API. Every call goes
// through the {code, message, result} envelope; code 2000 is success, anything
// else (or a transport failure) comes back as *models.APIError.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client against the given base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest performs an HTTP request against the backend and returns the raw
// result block of a successful envelope. The context comes from the inbound
// page request, so navigating away cancels the outbound call.
func (c *APIClient) makeRequest(ctx context.Context, method, endpoint, token string, payload interface{}) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, endpoint)
}

// makeMultipartRequest sends a multipart form (product data plus image part).
// The image is passed through untouched; the backend owns storage and resizing.
func (c *APIClient) makeMultipartRequest(ctx context.Context, method, endpoint, token string, fields map[string]string, fileField, fileName string, file io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, fmt.Errorf("failed to copy file data: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, endpoint)
}

func (c *APIClient) send(req *http.Request, endpoint string) (json.RawMessage, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("request failed")
		return nil, &models.APIError{Code: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.APIError{Code: 0, Message: "failed to read response: " + err.Error()}
	}

	var envelope models.Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("unparseable response")
		return nil, &models.APIError{Code: 0, Message: fmt.Sprintf("unexpected response (HTTP %d)", resp.StatusCode)}
	}

	if envelope.Code != models.SuccessCode {
		logger.Warn().Str("endpoint", endpoint).Int("code", envelope.Code).Str("message", envelope.Message).Msg("api error")
		return nil, &models.APIError{Code: envelope.Code, Message: envelope.Message}
	}

	return envelope.Result, nil
}

// decodeResult unmarshals an envelope result block into a typed value.
func decodeResult[T any](raw json.RawMessage) (*T, error) {
	var out T
	if len(raw) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &models.APIError{Code: 0, Message: "failed to parse result: " + err.Error()}
	}
	return &out, nil
}

// pageQuery renders the standard 0-based page/size query string.
func pageQuery(pr models.PageRequest) string {
	return fmt.Sprintf("?page=%d&size=%d", pr.Page, pr.Size)
}
