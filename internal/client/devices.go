package client

import (
	"context"
	"fmt"
	"strconv"
)

// BackupUsage describes one backup destination of a device. Present only
// when the listing was requested with backup usage included.
type BackupUsage struct {
	TargetComputerName  string   `json:"targetComputerName,omitempty"`
	TargetComputerGUID  string   `json:"targetComputerGuid,omitempty"`
	ServerName          string   `json:"serverName,omitempty"`
	ArchiveBytes        int64    `json:"archiveBytes,omitempty"`
	SelectedBytes       int64    `json:"selectedBytes,omitempty"`
	SelectedFiles       int64    `json:"selectedFiles,omitempty"`
	TodoBytes           int64    `json:"todoBytes,omitempty"`
	PercentComplete     float64  `json:"percentComplete,omitempty"`
	AlertState          int      `json:"alertState,omitempty"`
	AlertStates         []string `json:"alertStates,omitempty"`
	LastBackup          string   `json:"lastBackup,omitempty"`
	LastCompletedBackup string   `json:"lastCompletedBackup,omitempty"`
	LastConnected       string   `json:"lastConnected,omitempty"`
}

// Device is one record from the /api/v1/Computer listing.
type Device struct {
	ComputerID     int           `json:"computerId,omitempty"`
	GUID           string        `json:"guid"`
	Name           string        `json:"name"`
	OsHostname     string        `json:"osHostname,omitempty"`
	OsName         string        `json:"osName,omitempty"`
	OsVersion      string        `json:"osVersion,omitempty"`
	Status         string        `json:"status,omitempty"`
	Active         bool          `json:"active,omitempty"`
	Blocked        bool          `json:"blocked,omitempty"`
	AlertState     int           `json:"alertState,omitempty"`
	AlertStates    []string      `json:"alertStates,omitempty"`
	UserID         int           `json:"userId,omitempty"`
	UserUID        string        `json:"userUid,omitempty"`
	OrgUID         string        `json:"orgUid,omitempty"`
	ProductVersion string        `json:"productVersion,omitempty"`
	Version        int64         `json:"version,omitempty"`
	Address        string        `json:"address,omitempty"`
	RemoteAddress  string        `json:"remoteAddress,omitempty"`
	CreationDate   string        `json:"creationDate,omitempty"`
	LastConnected  string        `json:"lastConnected,omitempty"`
	LoginDate      string        `json:"loginDate,omitempty"`
	BackupUsage    []BackupUsage `json:"backupUsage,omitempty"`
}

// DeviceListOptions filter the device listing
type DeviceListOptions struct {
	// Active restricts the listing to active (true) or deactivated (false)
	// devices; nil lists both.
	Active *bool
	// IncludeBackupUsage asks the service to attach per-destination backup
	// statistics to each record.
	IncludeBackupUsage bool
}

// DevicesService lists devices from the inventory
type DevicesService struct {
	client *Client
}

type devicesEnvelope struct {
	Data struct {
		Computers []Device `json:"computers"`
	} `json:"data"`
}

// GetAll returns a pager over the device inventory
func (s *DevicesService) GetAll(ctx context.Context, opts DeviceListOptions) *Pager[Device] {
	return newPager(DefaultPageSize, func(ctx context.Context, pgNum int) ([]Device, error) {
		req := s.client.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"pgNum":  strconv.Itoa(pgNum),
				"pgSize": strconv.Itoa(DefaultPageSize),
			})
		if opts.Active != nil {
			req.SetQueryParam("active", strconv.FormatBool(*opts.Active))
		}
		if opts.IncludeBackupUsage {
			req.SetQueryParam("incBackupUsage", "true")
		}

		var envelope devicesEnvelope
		resp, err := req.SetResult(&envelope).Get("/api/v1/Computer")
		if err != nil {
			return nil, fmt.Errorf("list devices: %w", err)
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}
		return envelope.Data.Computers, nil
	})
}
