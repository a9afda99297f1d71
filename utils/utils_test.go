package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		title      string
		wantPrefix string
	}{
		{name: "simple", title: "Victorian House", wantPrefix: "victorian-house-"},
		{name: "punctuation", title: "  Antique   Clock!! (1890) ", wantPrefix: "antique-clock-1890-"},
		{name: "empty", title: "", wantPrefix: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			slug := Slugify(tc.title)
			require.True(t, strings.HasPrefix(slug, tc.wantPrefix), slug)
			require.Len(t, slug, len(tc.wantPrefix)+8)
		})
	}

	require.NotEqual(t, Slugify("same"), Slugify("same"))
}

func TestJSONError_AbortsAndRecords(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	reached := false
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		JSONError(c, http.StatusConflict, errors.New("bid amount too low"), "bid amount too low")
		require.Len(t, c.Errors, 1)
	}, func(*gin.Context) { reached = true })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusConflict, w.Code)
	require.False(t, reached)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "bid amount too low", body["error"])
	require.Equal(t, float64(http.StatusConflict), body["status"])
}
