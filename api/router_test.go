package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) Register(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
}

func TestRouterMountsControllersUnderVersion(t *testing.T) {
	var hits int
	r := NewRouter(Config{
		BaseURL:     "/api",
		Mode:        gin.TestMode,
		Controllers: []i.Controller{pingController{}},
		Middlewares: []gin.HandlerFunc{func(ctx *gin.Context) { hits++; ctx.Next() }},
	})
	h := r.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, 1, hits)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
