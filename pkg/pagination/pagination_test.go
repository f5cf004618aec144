package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func parseFor(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit values", "page=3&limit=50", 3, 50, 100},
		{"limit capped", "page=1&limit=500", 1, 100, 0},
		{"zero page falls back", "page=0&limit=10", 1, 10, 0},
		{"negative values fall back", "page=-2&limit=-5", 1, 20, 0},
		{"garbage falls back", "page=abc&limit=xyz", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseFor(t, tt.query)
			if p.Page != tt.wantPage {
				t.Errorf("page: got %d, want %d", p.Page, tt.wantPage)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("limit: got %d, want %d", p.Limit, tt.wantLimit)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("offset: got %d, want %d", p.Offset, tt.wantOffset)
			}
		})
	}
}
