package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
	"github.com/jules-cli/jules42/internal/timestamp"
)

// defaultSearchWindow bounds the audit log searches that need a lower
// bound; the service rejects fully unbounded count queries.
const defaultSearchWindow = 2 * 24 * time.Hour

var findingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// VerifyAuditLogDatesParams contains parameters for VerifyAuditLogDates
type VerifyAuditLogDatesParams struct {
	SessionParams
	Out io.Writer
}

// VerifyAuditLogDates scans the audit log for event timestamp formats the
// tool does not handle. Findings stream out as they are hit; the scan never
// stops early.
func VerifyAuditLogDates(ctx context.Context, params VerifyAuditLogDatesParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	pager := sess.client.AuditLogs.GetAll(ctx, client.AuditLogOptions{})
	return pager.ForEach(ctx, func(page client.Page[client.AuditEvent]) error {
		for _, event := range page.Records {
			finding := timestamp.Check(event)
			if finding == nil {
				continue
			}
			fmt.Fprintln(out, findingStyle.Render("FOUND ONE!"))
			if err := render.Pretty(out, finding); err != nil {
				return err
			}
		}
		return nil
	})
}

// AuditLogTotalParams contains parameters for the AuditLogTotal command
type AuditLogTotalParams struct {
	SessionParams
	Out io.Writer
}

// AuditLogTotal prints the total number of audit log events over the
// default search window
func AuditLogTotal(ctx context.Context, params AuditLogTotalParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	begin := time.Now().Add(-defaultSearchWindow)
	total := 0

	pager := sess.client.AuditLogs.GetAll(ctx, client.AuditLogOptions{Begin: begin})
	err = pager.ForEach(ctx, func(page client.Page[client.AuditEvent]) error {
		total += len(page.Records)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, total)
	return nil
}
