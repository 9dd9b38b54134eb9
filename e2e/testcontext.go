// Package e2e drives a running veristub server over HTTP with godog
// scenarios. The suite is skipped when no server is reachable, so it never
// breaks a plain unit-test run.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is used when VERISTUB_E2E_URL is not set.
const DefaultBaseURL = "http://localhost:8080"

// TestContext carries shared state across the steps of one scenario: the
// HTTP client, the last response, and named values captured from earlier
// responses (e.g. the created inquiry id).
type TestContext struct {
	BaseURL string
	Client  *http.Client

	lastStatus int
	lastBody   map[string]any
	captured   map[string]string
}

func NewTestContext() *TestContext {
	baseURL := os.Getenv("VERISTUB_E2E_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TestContext{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
		captured: make(map[string]string),
	}
}

// Reset clears per-scenario state and wipes the server so scenarios stay
// independent.
func (tc *TestContext) Reset() error {
	tc.lastStatus = 0
	tc.lastBody = nil
	tc.captured = make(map[string]string)
	return tc.POST("/admin/reset", nil)
}

// ServerReachable reports whether the target server answers its health check.
func (tc *TestContext) ServerReachable() bool {
	resp, err := tc.Client.Get(tc.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// POST sends a JSON request and records the response.
func (tc *TestContext) POST(path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(http.MethodPost, tc.BaseURL+tc.expand(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

// PATCH sends a JSON request and records the response.
func (tc *TestContext) PATCH(path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPatch, tc.BaseURL+tc.expand(path), bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

// GET sends a request and records the response.
func (tc *TestContext) GET(path string) error {
	req, err := http.NewRequest(http.MethodGet, tc.BaseURL+tc.expand(path), nil)
	if err != nil {
		return err
	}
	return tc.do(req)
}

func (tc *TestContext) do(req *http.Request) error {
	resp, err := tc.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody = nil
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return fmt.Errorf("response is not a JSON object: %w", err)
		}
		tc.lastBody = parsed
	}
	return nil
}

// LastStatus returns the status code of the most recent response.
func (tc *TestContext) LastStatus() int { return tc.lastStatus }

// ResponseField resolves a dotted path (e.g. "fields.name_first.value") in
// the last response body.
func (tc *TestContext) ResponseField(path string) (any, error) {
	var current any = tc.lastBody
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q: %q is not an object", path, part)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not present in response", path)
		}
	}
	return current, nil
}

// Capture stores a value from the last response under a name for later steps.
func (tc *TestContext) Capture(name, path string) error {
	value, err := tc.ResponseField(path)
	if err != nil {
		return err
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %q is not a string", path)
	}
	tc.captured[name] = s
	return nil
}

// Captured returns a previously captured value.
func (tc *TestContext) Captured(name string) string { return tc.captured[name] }

// expand substitutes {name} placeholders with captured values.
func (tc *TestContext) expand(path string) string {
	for name, value := range tc.captured {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	return path
}
