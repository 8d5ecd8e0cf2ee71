package geminiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/martinbenit/futbol/internal/constants"
)

// StatusError is returned for non-200 responses so callers can distinguish
// rate limiting (429) from a missing model (404) or other failures.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini error: %d %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the error is a 429/RESOURCE_EXHAUSTED reply.
func RateLimited(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || strings.Contains(se.Body, "RESOURCE_EXHAUSTED")
	}
	return false
}

// GenerateText invokes the Gemini generateContent endpoint with a single
// user prompt and returns the concatenated text of the first candidate. The
// API key is read from the environment; deadline and cancellation come from
// the caller's context.
func GenerateText(ctx context.Context, model, prompt string) (string, error) {
	apiKey := os.Getenv(constants.EnvGoogleAIAPIKey)
	if apiKey == "" {
		return "", fmt.Errorf("%s not set", constants.EnvGoogleAIAPIKey)
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	b, _ := json.Marshal(payload)

	url := constants.GeminiBaseURL + fmt.Sprintf(constants.GeminiGenerateContentPath, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderGeminiAPIKey, apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return text, nil
}
