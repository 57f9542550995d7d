package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  PaginationParams
	}{
		{"defaults for zero values", 0, 0, PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{"third page", 3, 10, PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{"limit above max falls back", 2, 500, PaginationParams{Page: 2, Limit: 20, Offset: 20}},
		{"negative page clamps", -4, 5, PaginationParams{Page: 1, Limit: 5, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationParams(tt.page, tt.limit))
		})
	}
}

func TestGetPaginationParams_FromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products?page=2&limit=5", nil)

	assert.Equal(t, PaginationParams{Page: 2, Limit: 5, Offset: 5}, GetPaginationParams(c))
}
