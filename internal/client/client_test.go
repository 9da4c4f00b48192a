package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jules-cli/jules42/internal/jerrors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-token")
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// fakeUsers builds n directory records named prefix-0..n-1
func fakeUsers(prefix string, n int) []User {
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, User{
			UserUID:  fmt.Sprintf("%s-uid-%d", prefix, i),
			Username: fmt.Sprintf("%s-%d@example.com", prefix, i),
		})
	}
	return users
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, map[string]interface{}{"data": map[string]interface{}{"users": []User{}}})
	}))

	pager := c.Users.GetAll(context.Background())
	_, ok, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestUsers_GetAll_Paginates(t *testing.T) {
	var pages []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/User", r.URL.Path)
		pgNum := r.URL.Query().Get("pgNum")
		pages = append(pages, pgNum)

		var users []User
		if pgNum == "1" {
			users = fakeUsers("full", DefaultPageSize)
		} else {
			users = fakeUsers("tail", 2)
		}
		writeJSON(t, w, map[string]interface{}{"data": map[string]interface{}{"users": users}})
	}))

	total := 0
	err := c.Users.GetAll(context.Background()).ForEach(context.Background(), func(page Page[User]) error {
		total += len(page.Records)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize+2, total)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestOrgs_GetByUID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Org/org-42", r.URL.Path)
		assert.Equal(t, "orgUid", r.URL.Query().Get("idType"))
		writeJSON(t, w, map[string]interface{}{"data": Org{
			OrgUID:  "org-42",
			OrgName: "Engineering",
			Status:  "Active",
		}})
	}))

	org, err := c.Orgs.GetByUID(context.Background(), "org-42")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", org.OrgName)
	assert.Equal(t, "org-42", org.OrgUID)
}

func TestOrgs_GetByUID_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Org not found"}`))
	}))

	_, err := c.Orgs.GetByUID(context.Background(), "missing")
	var apiErr *jerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Org not found")
}

func TestDetectionLists_GetUserByID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/api/v2/user/getbyid", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "uid-7", body["userId"])

		writeJSON(t, w, DetectionListUser{
			UserID:          "uid-7",
			Username:        "pat@example.com",
			ManagerUsername: "casey@example.com",
		})
	}))

	user, err := c.DetectionLists.GetUserByID(context.Background(), "uid-7")
	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", user.ManagerUsername)
}

func TestAuditLogs_GetAll_Defaults(t *testing.T) {
	var bodies []auditLogSearchRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rpc/search/search-audit-log", r.URL.Path)

		var body auditLogSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		writeJSON(t, w, auditLogSearchResponse{Events: []AuditEvent{
			{Type: "audit_log::logged_in/1", Timestamp: "2024-03-01T10:00:00.000Z"},
		}})
	}))

	pager := c.AuditLogs.GetAll(context.Background(), AuditLogOptions{})
	page, ok, err := pager.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, page.Records, 1)

	// Audit log pages are zero-based on the wire.
	require.Len(t, bodies, 1)
	assert.Equal(t, 0, bodies[0].Page)
	assert.Equal(t, DefaultPageSize, bodies[0].PageSize)
	assert.Nil(t, bodies[0].DateRange)
}

func TestAlerts_GetAggregate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/api/v1/query-details-aggregate", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alert-1", body["alertId"])

		writeJSON(t, w, map[string]interface{}{"alert": AlertAggregate{
			ID:             "alert-1",
			FFSURLEndpoint: "https://ffs.example.com",
			AlertURL:       "https://console.example.com/alerts/alert-1",
		}})
	}))

	aggregate, err := c.Alerts.GetAggregate(context.Background(), "alert-1")
	require.NoError(t, err)
	assert.Equal(t, "alert-1", aggregate.ID)
	assert.Equal(t, "https://ffs.example.com", aggregate.FFSURLEndpoint)
}

func TestSecurityData_StreamFileByMD5(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forensic-search/queryservice/api/v1/filedownload", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("checksum"))
		assert.Equal(t, "MD5", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte("file content"))
	}))

	stream, err := c.SecurityData.StreamFileByMD5(context.Background(), "abc123")
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()

	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(content))
}

func TestSecurityData_ChecksumNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"problem": "No files found with SHA256 checksum \"deadbeef\"."}`))
	}))

	_, err := c.SecurityData.StreamFileBySHA256(context.Background(), "deadbeef")
	var notFound *jerrors.ChecksumNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "deadbeef", notFound.Checksum)
	assert.Contains(t, notFound.Error(), "No files found")
}

func TestSecurityData_TransportErrorIsNotChecksumError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.SecurityData.StreamFileByMD5(context.Background(), "abc123")
	require.Error(t, err)

	var notFound *jerrors.ChecksumNotFoundError
	assert.False(t, errors.As(err, &notFound))

	var apiErr *jerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
