// Package timestamp probes event timestamps against the formats jules42
// understands. The audit log has shipped several shapes over time; anything
// outside this set is worth surfacing to an operator.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jules-cli/jules42/internal/client"
)

// formats are tried in order. RFC3339 variants first since that is what the
// audit log emits today.
var formats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Finding pairs an audit event with the reason its timestamp failed to
// parse. Findings are transient: they are printed as they are found, never
// stored.
type Finding struct {
	Reason string            `json:"reason"`
	Event  client.AuditEvent `json:"event"`
}

// Parse parses ts against the known format set. Integer values are treated
// as epoch seconds, or epoch milliseconds when they are too large to be a
// plausible seconds value.
func Parse(ts string) (time.Time, error) {
	trimmed := strings.TrimSpace(ts)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if epoch, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if len(trimmed) >= 13 {
			return time.UnixMilli(epoch).UTC(), nil
		}
		return time.Unix(epoch, 0).UTC(), nil
	}

	for _, format := range formats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("timestamp %q matches no known format", ts)
}

// Check probes one audit event. It returns nil when the timestamp parses,
// otherwise a Finding carrying the original event.
func Check(event client.AuditEvent) *Finding {
	if _, err := Parse(event.Timestamp); err != nil {
		return &Finding{Reason: err.Error(), Event: event}
	}
	return nil
}
