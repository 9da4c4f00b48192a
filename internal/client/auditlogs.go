package client

import (
	"context"
	"fmt"
	"time"
)

// AuditEvent is one entry from the audit log search. The timestamp is kept
// as the raw string the service sent so callers can probe its format.
type AuditEvent struct {
	Type           string   `json:"type$,omitempty"`
	Timestamp      string   `json:"timestamp"`
	ActorID        string   `json:"actorId,omitempty"`
	ActorName      string   `json:"actorName,omitempty"`
	ActorAgent     string   `json:"actorAgent,omitempty"`
	ActorIPAddress string   `json:"actorIpAddress,omitempty"`
	ActorType      string   `json:"actorType,omitempty"`
	AffectedUsers  []string `json:"affectedUsers,omitempty"`
	Success        *bool    `json:"success,omitempty"`
}

// AuditLogOptions restrict the audit log search window
type AuditLogOptions struct {
	// Begin bounds the search to events at or after this instant; the zero
	// value leaves the lower bound open.
	Begin time.Time
	// End bounds the search to events at or before this instant; the zero
	// value leaves the upper bound open.
	End time.Time
}

// AuditLogsService searches the audit log
type AuditLogsService struct {
	client *Client
}

type auditLogSearchRequest struct {
	Page      int             `json:"page"`
	PageSize  int             `json:"pageSize"`
	DateRange *auditDateRange `json:"dateRange,omitempty"`
}

type auditDateRange struct {
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

type auditLogSearchResponse struct {
	Events []AuditEvent `json:"events"`
}

// GetAll returns a pager over audit log events in the given window
func (s *AuditLogsService) GetAll(ctx context.Context, opts AuditLogOptions) *Pager[AuditEvent] {
	var dateRange *auditDateRange
	if !opts.Begin.IsZero() || !opts.End.IsZero() {
		dateRange = &auditDateRange{}
		if !opts.Begin.IsZero() {
			dateRange.StartTime = opts.Begin.UTC().Format(time.RFC3339)
		}
		if !opts.End.IsZero() {
			dateRange.EndTime = opts.End.UTC().Format(time.RFC3339)
		}
	}

	return newPager(DefaultPageSize, func(ctx context.Context, pgNum int) ([]AuditEvent, error) {
		var result auditLogSearchResponse
		resp, err := s.client.http.R().
			SetContext(ctx).
			SetBody(auditLogSearchRequest{
				// The audit log endpoint numbers pages from zero.
				Page:      pgNum - 1,
				PageSize:  DefaultPageSize,
				DateRange: dateRange,
			}).
			SetResult(&result).
			Post("/rpc/search/search-audit-log")
		if err != nil {
			return nil, fmt.Errorf("search audit log: %w", err)
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}
		return result.Events, nil
	})
}
