package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  *string `json:"name"`
	Hours *int    `json:"estimated_hours"`
}

func newContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return ctx, w
}

func TestBindJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, `{"name":"Go","estimated_hours":3}`)
		var dst sample
		require.True(t, bindJSON(ctx, &dst))
		assert.Equal(t, "Go", *dst.Name)
		assert.Equal(t, 3, *dst.Hours)
	})

	t.Run("wrong field type", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, `{"estimated_hours":"lots"}`)
		var dst sample
		require.False(t, bindJSON(ctx, &dst))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Data struct {
				Fields map[string]string `json:"fields"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Expected a int value.", body.Data.Fields["estimated_hours"])
	})

	t.Run("malformed json", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, `{"name":`)
		var dst sample
		require.False(t, bindJSON(ctx, &dst))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "JSON parse error")
	})

	t.Run("empty body", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, ``)
		var dst sample
		require.False(t, bindJSON(ctx, &dst))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPathID(t *testing.T) {
	ctx, _ := newContext(http.MethodGet, "")
	ctx.Params = gin.Params{{Key: "id", Value: "17"}}
	id, ok := pathID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		ctx, w := newContext(http.MethodGet, "")
		ctx.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := pathID(ctx)
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusNotFound, w.Code, raw)
	}
}
