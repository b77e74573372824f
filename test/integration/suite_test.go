//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/advisor-dashboard/internal/bootstrap"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	server       *httptest.Server
	client       *http.Client
	response     *http.Response
	responseBody []byte
	remembered   map[string]string
}

// newTestContext targets BASE_URL when set. Otherwise every scenario gets its
// own in-process dashboard on a freshly seeded store.
func newTestContext() *testContext {
	return &testContext{
		baseURL:    os.Getenv("BASE_URL"),
		client:     &http.Client{Timeout: 10 * time.Second},
		remembered: make(map[string]string),
	}
}

// newInProcessServer builds the dashboard the way cmd/service does, with the
// retrieval delay removed.
func newInProcessServer() (*httptest.Server, error) {
	cfg := &config.Config{
		App:     config.AppConfig{Name: "advisor-dashboard", Version: "integration", Environment: "test"},
		Auth:    config.AuthConfig{Header: config.DefaultAuthHeader},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}, MaxAge: time.Hour},
		Storage: config.StorageConfig{Seed: true},
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := bootstrap.Build(context.Background(), cfg, logger, bootstrap.Options{Registerer: prometheus.NewRegistry()})
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	app.Mount(engine)

	return httptest.NewServer(engine), nil
}

func (tc *testContext) start() error {
	if os.Getenv("BASE_URL") != "" {
		return nil
	}

	srv, err := newInProcessServer()
	if err != nil {
		return fmt.Errorf("starting in-process server: %w", err)
	}

	tc.server = srv
	tc.baseURL = srv.URL

	return nil
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}

	tc.response = nil
	tc.responseBody = nil
	tc.remembered = make(map[string]string)
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, tc.start()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	ctx.Step(`^I request DELETE "([^"]*)"$`, tc.iRequestDELETE)
	ctx.Step(`^I send (POST|PATCH) "([^"]*)" with:$`, tc.iSendWith)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	ctx.Step(`^the JSON field "([^"]*)" should have (\d+) items?$`, tc.theJSONFieldShouldHaveItems)
	ctx.Step(`^the response should be a list of (\d+) items?$`, tc.theResponseShouldBeAListOf)
	ctx.Step(`^I remember the JSON field "([^"]*)" as "([^"]*)"$`, tc.iRememberTheJSONField)
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	if err := tc.do(http.MethodGet, "/-/live", nil); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", tc.response.StatusCode)
	}

	return nil
}

func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *testContext) iRequestDELETE(path string) error {
	return tc.do(http.MethodDelete, path, nil)
}

func (tc *testContext) iSendWith(method, path string, body *godog.DocString) error {
	return tc.do(method, path, []byte(tc.expand(body.Content)))
}

// do sends a request and buffers the whole response body.
func (tc *testContext) do(method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.expand(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tc.response != nil {
		tc.response.Body.Close()
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// expand replaces {name} with values stored by "I remember".
func (tc *testContext) expand(s string) string {
	for name, value := range tc.remembered {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}

	return s
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBe(path, want string) error {
	v, err := tc.field(path)
	if err != nil {
		return err
	}

	if got := scalar(v); got != want {
		return fmt.Errorf("field %q is %q, want %q", path, got, want)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldHaveItems(path string, n int) error {
	v, err := tc.field(path)
	if err != nil {
		return err
	}

	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}

	if len(items) != n {
		return fmt.Errorf("field %q has %d items, want %d", path, len(items), n)
	}

	return nil
}

func (tc *testContext) theResponseShouldBeAListOf(n int) error {
	var items []any
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w", err)
	}

	if len(items) != n {
		return fmt.Errorf("response has %d items, want %d", len(items), n)
	}

	return nil
}

func (tc *testContext) iRememberTheJSONField(path, name string) error {
	v, err := tc.field(path)
	if err != nil {
		return err
	}

	tc.remembered[name] = scalar(v)

	return nil
}

// field walks a dotted path such as "response.text" or "goals.0.id".
func (tc *testContext) field(path string) (any, error) {
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	cur := doc

	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in %s", path, tc.responseBody)
			}

			cur = next
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %q", part, path)
			}

			cur = node[i]
		default:
			return nil, fmt.Errorf("field %q not found in %s", path, tc.responseBody)
		}
	}

	return cur, nil
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		raw, _ := json.Marshal(x)
		return string(raw)
	}
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
