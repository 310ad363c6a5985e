package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"skillstack_backend/internal/config"
	"skillstack_backend/internal/testutil"
	"skillstack_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
		Stats:     config.StatsConfig{CacheTTLSeconds: 60},
		Auth:      config.AuthConfig{ExpireHours: time.Hour},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a := New(cfg, testutil.OpenTestDB(t), nil)
	t.Cleanup(a.cancel)
	return a
}

func do(t *testing.T, a *App, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func decode(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst))
}

func TestSkillLifecycleOverHTTP(t *testing.T) {
	a := newTestApp(t, testConfig())

	w, env := do(t, a, http.MethodPost, "/api/skills", map[string]interface{}{
		"name":            "Go Concurrency",
		"resource_type":   "course",
		"platform":        "udemy",
		"estimated_hours": 10,
		"status":          "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var skill struct {
		ID         uint   `json:"id"`
		HoursSpent string `json:"hours_spent"`
		Status     string `json:"status"`
	}
	decode(t, env.Data, &skill)
	assert.Equal(t, "0.00", skill.HoursSpent)
	assert.Equal(t, "not_started", skill.Status)

	w, env = do(t, a, http.MethodPost, "/api/activities", map[string]interface{}{
		"skill":       skill.ID,
		"date":        "2024-05-01",
		"hours_spent": "4.5",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var activity struct {
		ID         uint   `json:"id"`
		Date       string `json:"date"`
		HoursSpent string `json:"hours_spent"`
	}
	decode(t, env.Data, &activity)
	assert.Equal(t, "2024-05-01", activity.Date)
	assert.Equal(t, "4.50", activity.HoursSpent)

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d", skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		HoursSpent         string     `json:"hours_spent"`
		Status             string     `json:"status"`
		ProgressPercentage float64    `json:"progress_percentage"`
		Activities         []struct{} `json:"activities"`
	}
	decode(t, env.Data, &detail)
	assert.Equal(t, "4.50", detail.HoursSpent)
	assert.Equal(t, "in_progress", detail.Status)
	assert.Equal(t, 45.0, detail.ProgressPercentage)
	assert.Len(t, detail.Activities, 1)

	w, _ = do(t, a, http.MethodPatch, fmt.Sprintf("/api/activities/%d", activity.ID), map[string]interface{}{
		"hours_spent": 10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d", skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, env.Data, &detail)
	assert.Equal(t, "10.00", detail.HoursSpent)
	assert.Equal(t, "completed", detail.Status)

	w, _ = do(t, a, http.MethodDelete, fmt.Sprintf("/api/activities/%d", activity.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d/consistency", skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report struct {
		HoursSpent string `json:"hours_spent"`
		Status     string `json:"status"`
		Consistent bool   `json:"consistent"`
	}
	decode(t, env.Data, &report)
	assert.True(t, report.Consistent)
	assert.Equal(t, "0.00", report.HoursSpent)
	assert.Equal(t, "not_started", report.Status)

	w, _ = do(t, a, http.MethodDelete, fmt.Sprintf("/api/skills/%d", skill.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d", skill.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	a := newTestApp(t, testConfig())

	w, env := do(t, a, http.MethodPost, "/api/skills", map[string]interface{}{
		"name":          "",
		"resource_type": "podcast",
		"platform":      "udemy",
		"difficulty":    9,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var data util.ValidationErrorData
	decode(t, env.Data, &data)
	assert.Contains(t, data.Fields, "name")
	assert.Contains(t, data.Fields, "resource_type")
	assert.Contains(t, data.Fields, "difficulty")

	w, env = do(t, a, http.MethodPost, "/api/skills", map[string]interface{}{
		"name":            "Typed",
		"resource_type":   "book",
		"platform":        "other",
		"estimated_hours": "many",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, env.Data, &data)
	assert.Contains(t, data.Fields, "estimated_hours")

	w, _ = do(t, a, http.MethodPost, "/api/skills", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, a, http.MethodPost, "/api/activities", map[string]interface{}{
		"skill":       999,
		"date":        "2024-05-01",
		"hours_spent": "1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, env.Data, &data)
	assert.Contains(t, data.Fields, "skill")

	w, _ = do(t, a, http.MethodGet, "/api/skills?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, a, http.MethodGet, "/api/skills/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, a, http.MethodDelete, "/api/activities/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndStatsOverHTTP(t *testing.T) {
	a := newTestApp(t, testConfig())

	first := testutil.CreateSkill(t, a.DB, "Rust Basics")
	testutil.CreateSkill(t, a.DB, "Kubernetes Deep Dive")

	w, _ := do(t, a, http.MethodPost, "/api/activities", map[string]interface{}{
		"skill":       first.ID,
		"date":        "2024-06-01",
		"hours_spent": "2.25",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := do(t, a, http.MethodGet, "/api/skills?search=kube", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []struct {
		Name string `json:"name"`
	}
	decode(t, env.Data, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Kubernetes Deep Dive", items[0].Name)

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/api/activities?skill=%d", first.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var activities []struct {
		HoursSpent string `json:"hours_spent"`
	}
	decode(t, env.Data, &activities)
	require.Len(t, activities, 1)
	assert.Equal(t, "2.25", activities[0].HoursSpent)

	w, env = do(t, a, http.MethodGet, "/api/skills/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalSkills      int64            `json:"total_skills"`
		InProgressSkills int64            `json:"in_progress_skills"`
		TotalHours       float64          `json:"total_hours"`
		StatusBreakdown  map[string]int64 `json:"status_breakdown"`
		MostUsedPlatform *string          `json:"most_used_platform"`
	}
	decode(t, env.Data, &stats)
	assert.Equal(t, int64(2), stats.TotalSkills)
	assert.Equal(t, int64(1), stats.InProgressSkills)
	assert.Equal(t, 2.25, stats.TotalHours)
	assert.Equal(t, int64(1), stats.StatusBreakdown["not_started"])
	require.NotNil(t, stats.MostUsedPlatform)
	assert.Equal(t, "udemy", *stats.MostUsedPlatform)
}

func TestRecomputeEndpointRepairsDrift(t *testing.T) {
	a := newTestApp(t, testConfig())
	skill := testutil.CreateSkill(t, a.DB, "Drifted")

	w, _ := do(t, a, http.MethodPost, "/api/activities", map[string]interface{}{
		"skill":       skill.ID,
		"date":        "2024-06-01",
		"hours_spent": "3",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, a.DB.Exec("UPDATE skills SET hours_spent = 99 WHERE id = ?", skill.ID).Error)

	w, _ = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d/consistency", skill.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env := do(t, a, http.MethodPost, fmt.Sprintf("/api/skills/%d/recompute", skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var detail struct {
		HoursSpent string `json:"hours_spent"`
	}
	decode(t, env.Data, &detail)
	assert.Equal(t, "3.00", detail.HoursSpent)

	w, _ = do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d/consistency", skill.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequiredWhenEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true
	cfg.Auth.Secret = "test-secret-with-enough-length-0123456789"
	a := newTestApp(t, cfg)

	w, _ := do(t, a, http.MethodGet, "/api/skills", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := util.GenerateJWT("owner", cfg.Auth.Secret, cfg.Auth.ExpireHours)
	require.NoError(t, err)

	w, _ = do(t, a, http.MethodGet, "/api/skills", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	// 健康检查不需要令牌
	w, _ = do(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	a := newTestApp(t, testConfig())

	w, _ := do(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(util.RequestIDHeader))

	w, _ = do(t, a, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w, _ = do(t, a, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/skills/{id}/recompute")
}

func TestRecomputeAllCommand(t *testing.T) {
	a := newTestApp(t, testConfig())
	skill := testutil.CreateSkill(t, a.DB, "Batch")
	require.NoError(t, a.DB.Exec("UPDATE skills SET status = 'completed', hours_spent = 5 WHERE id = ?", skill.ID).Error)

	n, err := a.RecomputeAll(a.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	w, env := do(t, a, http.MethodGet, fmt.Sprintf("/api/skills/%d", skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		HoursSpent string `json:"hours_spent"`
		Status     string `json:"status"`
	}
	decode(t, env.Data, &detail)
	assert.Equal(t, "0.00", detail.HoursSpent)
	assert.Equal(t, "not_started", detail.Status)
}
