package cli

import (
	"context"
	"io"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
)

// DevicesHealthParams contains parameters for the DevicesHealth command
type DevicesHealthParams struct {
	SessionParams
	Out io.Writer
}

// DevicesHealth shows a health report for every active device, including
// per-destination backup status. Reports stream out page by page.
func DevicesHealth(ctx context.Context, params DevicesHealthParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	active := true
	pager := sess.client.Devices.GetAll(ctx, client.DeviceListOptions{
		Active:             &active,
		IncludeBackupUsage: true,
	})

	return pager.ForEach(ctx, func(page client.Page[client.Device]) error {
		for _, device := range page.Records {
			if err := render.DeviceReport(out, deviceHealth(device)); err != nil {
				return err
			}
		}
		return nil
	})
}

// deviceHealth folds a raw device record into the report view
func deviceHealth(d client.Device) render.DeviceHealth {
	health := render.DeviceHealth{
		Name:          d.Name,
		GUID:          d.GUID,
		OS:            osLabel(d),
		Version:       d.ProductVersion,
		Status:        d.Status,
		LastConnected: d.LastConnected,
		AlertStates:   alertStates(d),
	}

	for _, usage := range d.BackupUsage {
		health.Backups = append(health.Backups, render.BackupStatus{
			Destination:     usage.TargetComputerName,
			ArchiveBytes:    usage.ArchiveBytes,
			PercentComplete: usage.PercentComplete,
			LastBackup:      usage.LastBackup,
			LastCompleted:   usage.LastCompletedBackup,
		})
	}

	return health
}

func osLabel(d client.Device) string {
	switch {
	case d.OsName != "" && d.OsVersion != "":
		return d.OsName + " " + d.OsVersion
	case d.OsName != "":
		return d.OsName
	default:
		return ""
	}
}

// alertStates merges the device-level and destination-level alert states,
// first occurrence wins.
func alertStates(d client.Device) []string {
	seen := make(map[string]bool)
	var states []string

	add := func(list []string) {
		for _, state := range list {
			if state == "" || seen[state] {
				continue
			}
			seen[state] = true
			states = append(states, state)
		}
	}

	add(d.AlertStates)
	for _, usage := range d.BackupUsage {
		add(usage.AlertStates)
	}

	return states
}
