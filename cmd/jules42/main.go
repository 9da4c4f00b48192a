// Package main is the entry point for the jules42 CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	jcli "github.com/jules-cli/jules42/internal/cli"
	"github.com/jules-cli/jules42/internal/jerrors"
	"github.com/jules-cli/jules42/internal/profile"
	"github.com/jules-cli/jules42/pkg/version"
)

func main() {
	profilePath := profile.DefaultPath()

	sessionParams := func(cmd *cli.Command) jcli.SessionParams {
		return jcli.SessionParams{
			ProfilePath: profilePath,
			Profile:     cmd.String("profile"),
			LogLevel:    cmd.String("log-level"),
		}
	}

	app := &cli.Command{
		Name:                  "jules42",
		Usage:                 "Custom commands for the Code42-style security platform",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("JULES42_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "Credential profile name (defaults to the stored default)",
				Sources: cli.EnvVars("JULES42_PROFILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list-managers",
				Usage: "List all managers along with their managed employees",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.ListManagers(ctx, jcli.ListManagersParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
			{
				Name:  "list-orgs",
				Usage: "List the organizations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.ListOrgs(ctx, jcli.ListOrgsParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
			{
				Name:      "show-org",
				Usage:     "Show information about an organization",
				ArgsUsage: "<org_id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return jerrors.NewUsageError("Missing required argument org_id.")
					}
					return jcli.ShowOrg(ctx, jcli.ShowOrgParams{
						SessionParams: sessionParams(cmd),
						OrgUID:        cmd.Args().Get(0),
					})
				},
			},
			{
				Name:  "verify-audit-log-dates",
				Usage: "Seek audit log event timestamp formats we don't handle correctly",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.VerifyAuditLogDates(ctx, jcli.VerifyAuditLogDatesParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
			{
				Name:  "devices-health",
				Usage: "Show a device health report",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.DevicesHealth(ctx, jcli.DevicesHealthParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
			{
				Name:  "download",
				Usage: "Download a file from the forensic store by checksum",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "md5",
						Usage: "The MD5 hash of the file to download",
					},
					&cli.StringFlag{
						Name:  "sha256",
						Usage: "The SHA256 hash of the file to download",
					},
					&cli.StringFlag{
						Name:  "save-as",
						Value: "download",
						Usage: "The name of the file to save as",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.Download(ctx, jcli.DownloadParams{
						SessionParams: sessionParams(cmd),
						MD5:           cmd.String("md5"),
						SHA256:        cmd.String("sha256"),
						SaveAs:        cmd.String("save-as"),
					})
				},
			},
			{
				Name:  "select-profile",
				Usage: "Set a profile as the default by selecting it from a list",
				Action: func(_ context.Context, _ *cli.Command) error {
					return jcli.SelectProfile(jcli.SelectProfileParams{
						ProfilePath: profilePath,
					})
				},
			},
			{
				Name:      "show-alert-aggregate",
				Usage:     "Show an aggregated alert details view",
				ArgsUsage: "<alert_id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return jerrors.NewUsageError("Missing required argument alert_id.")
					}
					return jcli.ShowAlertAggregate(ctx, jcli.ShowAlertAggregateParams{
						SessionParams: sessionParams(cmd),
						AlertID:       cmd.Args().Get(0),
					})
				},
			},
			{
				Name:  "list-alert-urls",
				Usage: "List console and forensic-search URLs for recent alerts",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.ListAlertURLs(ctx, jcli.ListAlertURLsParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
			{
				Name:  "audit-log-total",
				Usage: "Show the total number of audit log events",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return jcli.AuditLogTotal(ctx, jcli.AuditLogTotalParams{
						SessionParams: sessionParams(cmd),
					})
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
