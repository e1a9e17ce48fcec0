// Load tests against a running instance. They are skipped unless
// BENCH_BASE_URL points at a deployed service, so the regular test run
// never depends on one.
package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

type benchConfig struct {
	BaseURL     string
	AdminEmail  string
	AdminPass   string
	Concurrency int
	Requests    int
}

var (
	config    benchConfig
	authToken string
)

func TestMain(m *testing.M) {
	config = benchConfig{
		BaseURL:     os.Getenv("BENCH_BASE_URL"),
		AdminEmail:  envOr("BENCH_ADMIN_EMAIL", "admin@citizensvoice.gy"),
		AdminPass:   envOr("BENCH_ADMIN_PASS", "admin-secret"),
		Concurrency: 10,
		Requests:    100,
	}

	if config.BaseURL != "" {
		if err := login(); err != nil {
			fmt.Printf("benchmark login failed: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireTarget(t *testing.T) {
	t.Helper()
	if config.BaseURL == "" {
		t.Skip("BENCH_BASE_URL not set")
	}
}

func login() error {
	payload, _ := json.Marshal(map[string]string{
		"email":    config.AdminEmail,
		"password": config.AdminPass,
	})
	resp, err := http.Post(config.BaseURL+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK || envelope.Data.Token == "" {
		return fmt.Errorf("login rejected: %s", envelope.Message)
	}
	authToken = envelope.Data.Token
	return nil
}

func TestStruggleFeed(t *testing.T) {
	requireTarget(t)
	b := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := b.RunGET("/functions/struggles")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("struggle feed failed: success rate %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

func TestFilteredStruggles(t *testing.T) {
	requireTarget(t)
	b := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := b.RunGET("/api/struggles?category=Infrastructure")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("filtered struggle list failed: success rate %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

func TestMinistryDirectory(t *testing.T) {
	requireTarget(t)
	b := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := b.RunGET("/api/ministries")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("ministry directory failed: success rate %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

func TestLiveResourceSnapshot(t *testing.T) {
	requireTarget(t)
	// lower volume: this endpoint is uncached by design
	b := NewAPIBenchmark(config.BaseURL, 5, 50, "")
	result := b.RunGET("/functions/resources/live")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("live snapshot failed: success rate %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

func TestModerationQueue(t *testing.T) {
	requireTarget(t)
	b := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, authToken)
	result := b.RunGET("/api/admin/reports")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("moderation queue failed: success rate %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}
