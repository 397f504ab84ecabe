package image

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// apiLimits are reported in a RateLimitError when a provider answers 429
type apiLimits struct {
	retryAfter   int // Seconds, used when the response has no Retry-After
	limitPerHour int
}

// getJSON performs req and decodes a 200 response into v. Other statuses
// become a RateLimitError or SearchError for provider.
func getJSON(client *http.Client, req *http.Request, provider string, limits apiLimits, v any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		retryAfter := limits.retryAfter
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
			retryAfter = seconds
		}
		return &RateLimitError{
			Provider:     provider,
			RetryAfter:   retryAfter,
			LimitPerHour: limits.limitPerHour,
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &SearchError{
			Provider: provider,
			Code:     strconv.Itoa(resp.StatusCode),
			Message:  "invalid API key",
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SearchError{
			Provider: provider,
			Code:     strconv.Itoa(resp.StatusCode),
			Message:  string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
