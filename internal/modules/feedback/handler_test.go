package feedback

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thesignal/core/internal/pkg/ratelimit"
)

const testArticleID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func newTestRouter(limiter *ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"), NewService(nil, zap.NewNop()), limiter, zap.NewNop())
	return router
}

func postFeedback(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitRejectsOversizedBody(t *testing.T) {
	router := newTestRouter(ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow))

	body := `{"articleId":"` + testArticleID + `","comment":"` + strings.Repeat("x", 10100) + `"}`
	if w := postFeedback(router, body); w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestSubmitValidatesArticleID(t *testing.T) {
	router := newTestRouter(ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow))

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"articleId":`},
		{"missing articleId", `{}`},
		{"empty articleId", `{"articleId":""}`},
		{"not a uuid", `{"articleId":"not-a-uuid"}`},
		{"bundle id", `{"articleId":"global-1"}`},
	}
	for _, tc := range cases {
		if w := postFeedback(router, tc.body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, http.StatusBadRequest)
		}
	}
}

func TestSubmitRateLimited(t *testing.T) {
	router := newTestRouter(ratelimit.New(2, time.Minute))
	body := `{"articleId":"` + testArticleID + `"}`

	for i := 0; i < 2; i++ {
		if w := postFeedback(router, body); w.Code == http.StatusTooManyRequests {
			t.Fatalf("request %d limited before the limit was reached", i+1)
		}
	}

	w := postFeedback(router, body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want %q", got, "60")
	}
}

func TestSubmitRejectionsDoNotConsumeLimit(t *testing.T) {
	router := newTestRouter(ratelimit.New(1, time.Minute))

	for i := 0; i < 5; i++ {
		if w := postFeedback(router, `{"articleId":"not-a-uuid"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("invalid submission %d: status = %d", i+1, w.Code)
		}
	}

	body := `{"articleId":"` + testArticleID + `"}`
	if w := postFeedback(router, body); w.Code == http.StatusTooManyRequests {
		t.Error("rejected submissions must not count against the limit")
	}
}

func TestSummaryValidatesArticleID(t *testing.T) {
	router := newTestRouter(ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow))

	for _, target := range []string{"/api/feedback", "/api/feedback?articleId=not-a-uuid"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status = %d, want %d", target, w.Code, http.StatusBadRequest)
		}
	}
}

func TestSummaryWithoutDatabase(t *testing.T) {
	router := newTestRouter(ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback?articleId="+testArticleID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var summary Summary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.TotalResponses != 0 || summary.TopTags == nil || summary.RecentComments == nil {
		t.Errorf("got %+v, want the zero summary", summary)
	}
}
