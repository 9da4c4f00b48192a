package cli

import (
	"context"
	"io"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
)

// ListOrgsParams contains parameters for the ListOrgs command
type ListOrgsParams struct {
	SessionParams
	Out io.Writer
}

// ListOrgs lists the organizations, one indented JSON document per org
func ListOrgs(ctx context.Context, params ListOrgsParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	pager := sess.client.Orgs.GetAll(ctx)
	return pager.ForEach(ctx, func(page client.Page[client.Org]) error {
		for _, org := range page.Records {
			if err := render.Pretty(out, org); err != nil {
				return err
			}
		}
		return nil
	})
}

// ShowOrgParams contains parameters for the ShowOrg command
type ShowOrgParams struct {
	SessionParams
	OrgUID string
	Out    io.Writer
}

// ShowOrg shows information about one organization
func ShowOrg(ctx context.Context, params ShowOrgParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}

	org, err := sess.client.Orgs.GetByUID(ctx, params.OrgUID)
	if err != nil {
		return err
	}

	return render.Pretty(stdout(params.Out), org)
}
