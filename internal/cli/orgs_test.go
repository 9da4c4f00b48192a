package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrgs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/Org", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pgNum") != "1" {
			writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"orgs": []interface{}{}}})
			return
		}
		writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"orgs": []map[string]interface{}{
			{"orgUid": "org-1", "orgName": "Engineering"},
			{"orgUid": "org-2", "orgName": "Sales"},
		}}})
	})

	var out bytes.Buffer
	err := ListOrgs(context.Background(), ListOrgsParams{
		SessionParams: testSession(t, mux),
		Out:           &out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"orgName": "Engineering"`)
	assert.Contains(t, out.String(), `"orgName": "Sales"`)
}

func TestShowOrg(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/Org/org-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "orgUid", r.URL.Query().Get("idType"))
		writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{
			"orgUid":  "org-1",
			"orgName": "Engineering",
			"status":  "Active",
		}})
	})

	var out bytes.Buffer
	err := ShowOrg(context.Background(), ShowOrgParams{
		SessionParams: testSession(t, mux),
		OrgUID:        "org-1",
		Out:           &out,
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Engineering", got["orgName"])
	assert.Equal(t, "org-1", got["orgUid"])
}
