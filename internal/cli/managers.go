package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
)

// ListManagersParams contains parameters for the ListManagers command
type ListManagersParams struct {
	SessionParams
	Out io.Writer
}

// ManagerGroups accumulates employees per manager. Both the order managers
// are first seen and the order employees are appended are preserved, so the
// rendered mapping mirrors the directory walk.
type ManagerGroups struct {
	order  []string
	groups map[string][]string
}

// NewManagerGroups creates an empty accumulator
func NewManagerGroups() *ManagerGroups {
	return &ManagerGroups{groups: make(map[string][]string)}
}

// Add appends username to the manager's group, creating it if absent
func (g *ManagerGroups) Add(manager, username string) {
	if _, ok := g.groups[manager]; !ok {
		g.order = append(g.order, manager)
	}
	g.groups[manager] = append(g.groups[manager], username)
}

// Len returns the number of distinct managers
func (g *ManagerGroups) Len() int {
	return len(g.order)
}

// Get returns the employees of one manager in append order
func (g *ManagerGroups) Get(manager string) []string {
	return g.groups[manager]
}

// Managers returns the managers in first-seen order
func (g *ManagerGroups) Managers() []string {
	return g.order
}

// MarshalJSON renders the groups as a JSON object in first-seen order.
// encoding/json sorts plain map keys, which would destroy the ordering.
func (g *ManagerGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, manager := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(manager)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(g.groups[manager])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ListManagers lists all managers along with their managed employees
func ListManagers(ctx context.Context, params ListManagersParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	groups, err := collectManagerGroups(ctx, sess)
	if err != nil {
		return err
	}

	return render.Pretty(out, groups)
}

// collectManagerGroups walks the full user directory and resolves each
// user's manager through their detection-list profile.
func collectManagerGroups(ctx context.Context, sess *session) (*ManagerGroups, error) {
	groups := NewManagerGroups()

	pager := sess.client.Users.GetAll(ctx)
	err := pager.ForEach(ctx, func(page client.Page[client.User]) error {
		for _, user := range page.Records {
			detail, err := sess.client.DetectionLists.GetUserByID(ctx, user.UserUID)
			if err != nil {
				return err
			}
			if detail.ManagerUsername == "" {
				// No resolvable manager; the user is left out of the report.
				sess.log.Debug().Str("username", user.Username).Msg("Skipping user without manager")
				continue
			}
			groups.Add(detail.ManagerUsername, user.Username)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return groups, nil
}
