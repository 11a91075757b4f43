package hoasdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an unauthenticated request. A non nil body is sent as
// JSON.
func (c *SDKClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return c.send(ctx, method, path, body, "")
}

// doAuthRequest performs a request carrying the session's bearer token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.send(ctx, method, path, body, s.accessToken)
}

func (c *SDKClient) send(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call is doAuthRequest followed by decodeJSON, or checkStatusNoContent when
// out is nil.
func (s *Session) call(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	resp, err := s.doAuthRequest(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, out, expectedStatus)
}

// decodeJSON decodes a JSON response into target. Any status other than
// expectedStatus is returned as an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatusNoContent returns a typed error if the response status is not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
