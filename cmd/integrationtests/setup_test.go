package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/app"
	"auction-house/internal/config"
	model "auction-house/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestApp builds the full application on the in-memory store and seeds users.
// Users listed in verified have a confirmed email and an approved photo id.
func SetupTestApp(t *testing.T, verified []string, unverified ...string) *app.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := app.New(context.Background(), config.Default())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	for _, id := range verified {
		a.Memory.AddUser(model.User{UserID: id, Email: id + "@example.com", FirstName: id, EmailVerified: true})
		a.Memory.AddDocument(model.Document{
			DocumentID: "doc-" + id,
			UserID:     id,
			Type:       model.DocumentPhotoID,
			Review:     model.ReviewApproved,
		})
	}
	for _, id := range unverified {
		a.Memory.AddUser(model.User{UserID: id, Email: id + "@example.com", FirstName: id})
	}
	return a
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// Data returns the envelope's data object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}

// CreateAdvert lists a running advert through the API and returns its id.
func CreateAdvert(t *testing.T, router *gin.Engine, owner, state string, amount int64, extra map[string]any) string {
	t.Helper()

	now := time.Now().UTC()
	body := map[string]any{
		"owner_id":  owner,
		"title":     "Farm House " + state,
		"state":     state,
		"amount":    amount,
		"starts_at": now.Add(-time.Hour),
		"ends_at":   now.Add(24 * time.Hour),
	}
	for k, v := range extra {
		body[k] = v
	}

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/adverts", body)
	require.Equal(t, 201, w.Code, w.Body.String())
	return Data(t, resp)["advert_id"].(string)
}
