package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMissingCredentials is returned before any network call when the
// provider was constructed without an API token.
var ErrMissingCredentials = errors.New("inference token is not set")

const maxAttempts = 3

// InferenceProvider talks to an OpenAI-compatible chat completions endpoint.
type InferenceProvider struct {
	url     string
	token   string
	model   string
	client  *http.Client
	limiter *adaptiveLimiter
}

func NewInferenceProvider(url, token, model string) *InferenceProvider {
	return &InferenceProvider{
		url:   url,
		token: token,
		model: model,
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		limiter: newAdaptiveLimiter(),
	}
}

func (p *InferenceProvider) Generate(messages []Message, opts Options) (string, error) {
	if p.token == "" {
		return "", ErrMissingCredentials
	}

	payload := map[string]interface{}{
		"model":    p.model,
		"messages": messages,
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		payload["temperature"] = opts.Temperature
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := p.limiter.wait(context.Background()); err != nil {
			return "", err
		}

		reply, retry, err := p.doRequest(data)
		if err == nil {
			p.limiter.success()
			return reply, nil
		}

		lastErr = err
		if !retry {
			return "", err
		}
		p.limiter.failure()
	}

	return "", lastErr
}

// doRequest performs one HTTP round trip. The second return value marks
// errors worth retrying (transport failures, 429, 5xx).
func (p *InferenceProvider) doRequest(data []byte) (string, bool, error) {
	req, err := http.NewRequest(http.MethodPost, p.url, bytes.NewReader(data))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", true, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", retryableStatus(resp.StatusCode),
			fmt.Errorf("inference http %d: %s", resp.StatusCode, truncate(body))
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return "", false, fmt.Errorf("inference endpoint returned html")
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false, err
	}

	if len(parsed.Choices) == 0 {
		return "", false, fmt.Errorf("inference returned empty choices")
	}

	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if isGarbageResponse(reply) {
		return "", false, fmt.Errorf("inference returned garbage")
	}

	return reply, false, nil
}
