package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestTokenBucketExhaustsAndRefills(t *testing.T) {
	bucket := NewTokenBucket(100, 2)

	if !bucket.Allow() || !bucket.Allow() {
		t.Fatal("burst capacity not honored")
	}
	if bucket.Allow() {
		t.Error("request allowed past capacity")
	}

	// 100 tokens/s refills at least one token well within 50ms
	time.Sleep(50 * time.Millisecond)
	if !bucket.Allow() {
		t.Error("bucket did not refill")
	}
}

func TestFunctionLimiterAnswersInFlatEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/collections", FunctionIPRateLimiter(0.001, 1), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"struggles": []string{}})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/collections", nil)
		req.RemoteAddr = "203.0.113.77:40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("first request returned %d", w.Code)
	}

	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("limited request returned %d, want 429", w.Code)
	}
	if w.Body.String() != `{"error":"Too many requests"}` {
		t.Errorf("limited body = %s, want the flat error shape", w.Body.String())
	}
}

func TestTokenBucketCapacityCap(t *testing.T) {
	bucket := NewTokenBucket(1000, 3)
	time.Sleep(20 * time.Millisecond)

	allowed := 0
	for i := 0; i < 10; i++ {
		if bucket.Allow() {
			allowed++
		}
	}
	if allowed > 3 {
		t.Errorf("allowed %d requests in a burst, capacity is 3", allowed)
	}
}
