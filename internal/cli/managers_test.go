package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerGroups_FirstSeenOrder(t *testing.T) {
	groups := NewManagerGroups()
	groups.Add("casey", "pat")
	groups.Add("riley", "sam")
	groups.Add("casey", "jo")
	groups.Add("casey", "jo") // duplicate inputs stay duplicated

	assert.Equal(t, []string{"casey", "riley"}, groups.Managers())
	assert.Equal(t, []string{"pat", "jo", "jo"}, groups.Get("casey"))
	assert.Equal(t, []string{"sam"}, groups.Get("riley"))
	assert.Equal(t, 2, groups.Len())
}

func TestManagerGroups_MarshalJSONPreservesOrder(t *testing.T) {
	groups := NewManagerGroups()
	groups.Add("zoe", "a")
	groups.Add("abe", "b")

	data, err := json.Marshal(groups)
	require.NoError(t, err)

	// encoding/json would sort a plain map; the accumulator must not.
	assert.Equal(t, `{"zoe":["a"],"abe":["b"]}`, string(data))
}

func TestListManagers(t *testing.T) {
	managersByUID := map[string]string{
		"uid-1": "casey@example.com",
		"uid-2": "casey@example.com",
		"uid-3": "", // no manager on file: skipped
		"uid-4": "riley@example.com",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/User", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pgNum") != "1" {
			writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"users": []interface{}{}}})
			return
		}
		writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"users": []map[string]string{
			{"userUid": "uid-1", "username": "pat@example.com"},
			{"userUid": "uid-2", "username": "jo@example.com"},
			{"userUid": "uid-3", "username": "orphan@example.com"},
			{"userUid": "uid-4", "username": "sam@example.com"},
		}}})
	})
	mux.HandleFunc("/svc/api/v2/user/getbyid", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSONMap(t, w, map[string]string{
			"userId":          body["userId"],
			"managerUsername": managersByUID[body["userId"]],
		})
	})

	var out bytes.Buffer
	err := ListManagers(context.Background(), ListManagersParams{
		SessionParams: testSession(t, mux),
		Out:           &out,
	})
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string][]string{
		"casey@example.com": {"pat@example.com", "jo@example.com"},
		"riley@example.com": {"sam@example.com"},
	}, got)

	// Groups print in first-encountered order.
	caseyIdx := strings.Index(out.String(), "casey@example.com")
	rileyIdx := strings.Index(out.String(), "riley@example.com")
	assert.Less(t, caseyIdx, rileyIdx)

	assert.NotContains(t, out.String(), "orphan@example.com")
}

func writeJSONMap(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
