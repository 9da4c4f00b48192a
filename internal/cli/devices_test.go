package cli

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
)

func TestDevicesHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/Computer", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		assert.Equal(t, "true", r.URL.Query().Get("incBackupUsage"))

		if r.URL.Query().Get("pgNum") != "1" {
			writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"computers": []interface{}{}}})
			return
		}
		writeJSONMap(t, w, map[string]interface{}{"data": map[string]interface{}{"computers": []map[string]interface{}{
			{
				"guid":           "9876",
				"name":           "LAPTOP-1234",
				"osName":         "mac",
				"osVersion":      "14.2",
				"status":         "Active",
				"productVersion": "10.2.0",
				"lastConnected":  "2024-03-01T10:00:00.000Z",
				"backupUsage": []map[string]interface{}{
					{
						"targetComputerName":  "PROe Cloud, US",
						"archiveBytes":        123456,
						"percentComplete":     99.5,
						"lastCompletedBackup": "2024-02-29T01:00:00.000Z",
					},
				},
			},
		}}})
	})

	var out bytes.Buffer
	err := DevicesHealth(context.Background(), DevicesHealthParams{
		SessionParams: testSession(t, mux),
		Out:           &out,
	})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "LAPTOP-1234 (9876)")
	assert.Contains(t, report, "mac 14.2")
	assert.Contains(t, report, "PROe Cloud, US")
	assert.Contains(t, report, "99.5%")
}

func TestDeviceHealth_MergesAlertStates(t *testing.T) {
	health := deviceHealth(client.Device{
		Name:        "LAPTOP-1",
		GUID:        "1",
		AlertStates: []string{"CriticalConnectionAlert"},
		BackupUsage: []client.BackupUsage{
			{AlertStates: []string{"CriticalBackupAlert", "CriticalConnectionAlert"}},
		},
	})

	assert.Equal(t, []string{"CriticalConnectionAlert", "CriticalBackupAlert"}, health.AlertStates)
}

func TestDeviceHealth_BackupRows(t *testing.T) {
	health := deviceHealth(client.Device{
		Name: "LAPTOP-1",
		GUID: "1",
		BackupUsage: []client.BackupUsage{
			{TargetComputerName: "PROe Cloud, US", ArchiveBytes: 10, PercentComplete: 50},
			{TargetComputerName: "Local NAS", ArchiveBytes: 20, PercentComplete: 100},
		},
	})

	require.Len(t, health.Backups, 2)
	assert.Equal(t, render.BackupStatus{
		Destination:     "PROe Cloud, US",
		ArchiveBytes:    10,
		PercentComplete: 50,
	}, health.Backups[0])
}
