package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"courserec-backend/internal/shared/config"
	"courserec-backend/internal/shared/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		DBDriver:        "memory",
		SeedSampleData:  true,
		RecommendRate:   100,
		RecommendBurst:  100,
	}
	return server.NewRouter(cfg)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestRecommendEndToEnd(t *testing.T) {
	router := newTestRouter()

	payload := map[string]any{
		"interests":           []string{"ai_ml"},
		"career_goals":        "machine learning engineer",
		"academic_level":      "junior",
		"num_recommendations": 3,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Recommendations []struct {
			ID        string  `json:"id"`
			Score     float64 `json:"recommendation_score"`
			Reason    string  `json:"recommendation_reason"`
			Breakdown struct {
				InterestMatch float64 `json:"interest_match"`
			} `json:"score_breakdown"`
		} `json:"recommendations"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Count == 0 || len(out.Recommendations) != out.Count {
		t.Fatalf("expected recommendations, got count=%d len=%d", out.Count, len(out.Recommendations))
	}
	top := out.Recommendations[0]
	if top.ID != "CS375" {
		t.Fatalf("expected the ML course on top for ai_ml interests, got %s", top.ID)
	}
	if top.Reason == "" {
		t.Fatalf("expected a recommendation reason")
	}
}

func TestRecommendRejectsBadBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCoursesAndSimilarEndpoints(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("list courses: expected 200, got %d", resp.Code)
	}
	var listed struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode course list: %v", err)
	}
	if listed.Count == 0 {
		t.Fatalf("expected seeded courses")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses/CS375/similar?num=3", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("similar courses: expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses/NOPE999/similar", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown course: expected 404, got %d", resp.Code)
	}
}

func TestRatingFlowUpdatesCourseAverage(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(map[string]any{
		"student_email": "student@example.edu",
		"course_id":     "CS375",
		"rating":        5,
		"review":        "Great course.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("submit rating: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var rated struct {
		UpdatedAverage float64 `json:"updated_average"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rated); err != nil {
		t.Fatalf("decode rating response: %v", err)
	}
	if rated.UpdatedAverage != 5 {
		t.Fatalf("updated_average = %v, want 5", rated.UpdatedAverage)
	}

	// The course row reflects the new aggregate.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses/CS375", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("get course: expected 200, got %d", resp.Code)
	}
	var fetched struct {
		Course struct {
			AvgRating    float64 `json:"avg_rating"`
			TotalRatings int     `json:"total_ratings"`
		} `json:"course"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	if fetched.Course.AvgRating != 5 || fetched.Course.TotalRatings != 1 {
		t.Fatalf("course aggregate = %v/%d, want 5/1", fetched.Course.AvgRating, fetched.Course.TotalRatings)
	}
}

func TestRatingValidation(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{
			name: "rating_out_of_range",
			body: map[string]any{"student_email": "s@e.edu", "course_id": "CS375", "rating": 9},
			want: http.StatusBadRequest,
		},
		{
			name: "missing_email",
			body: map[string]any{"course_id": "CS375", "rating": 4},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown_course",
			body: map[string]any{"student_email": "s@e.edu", "course_id": "NOPE999", "rating": 4},
			want: http.StatusNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("recommendation_requested_total")) {
		t.Fatalf("metrics output missing recommendation counters: %s", resp.Body.String())
	}
}
