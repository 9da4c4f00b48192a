// Package cli implements the jules42 commands. Each command is a function
// taking a Params struct; main wires them to the urfave/cli command tree.
package cli

import (
	"io"
	"os"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/logger"
	"github.com/jules-cli/jules42/internal/profile"
)

// SessionParams identify the credential profile and logging verbosity
// shared by every command that reaches the platform API.
type SessionParams struct {
	ProfilePath string
	Profile     string
	LogLevel    string
}

// session holds the per-invocation collaborators: the resolved profile and
// the authenticated API client built from it.
type session struct {
	log     *logger.Logger
	client  *client.Client
	profile *profile.Profile
}

// newSession resolves the named profile (or the store default) and builds
// an authenticated client for it.
func newSession(params SessionParams) (*session, error) {
	log := logger.New(params.LogLevel, os.Stderr)

	store, err := profile.Load(params.ProfilePath)
	if err != nil {
		return nil, err
	}

	var prof *profile.Profile
	if params.Profile != "" {
		prof, err = store.Get(params.Profile)
	} else {
		prof, err = store.Default()
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("profile", prof.Name).Str("url", prof.URL).Msg("Resolved profile")

	return &session{
		log:     log,
		client:  client.New(prof.URL, prof.Token, client.WithLogger(log)),
		profile: prof,
	}, nil
}

// stdout returns w, defaulting to os.Stdout when nil. Commands take a
// writer so tests can capture output.
func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
