package cli

import (
	"context"
	"io"
	"time"

	"github.com/jules-cli/jules42/internal/client"
	"github.com/jules-cli/jules42/internal/render"
)

// alertSearchWindow is the default lookback for list-alert-urls
const alertSearchWindow = 30 * 24 * time.Hour

// ShowAlertAggregateParams contains parameters for ShowAlertAggregate
type ShowAlertAggregateParams struct {
	SessionParams
	AlertID string
	Out     io.Writer
}

// ShowAlertAggregate shows the aggregated details view of one alert
func ShowAlertAggregate(ctx context.Context, params ShowAlertAggregateParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}

	aggregate, err := sess.client.Alerts.GetAggregate(ctx, params.AlertID)
	if err != nil {
		return err
	}

	return render.Pretty(stdout(params.Out), aggregate)
}

// ListAlertURLsParams contains parameters for the ListAlertURLs command
type ListAlertURLsParams struct {
	SessionParams
	Out io.Writer
}

// alertURLs is the projection printed per alert
type alertURLs struct {
	ID       string `json:"id"`
	FFSURL   string `json:"ffsUrl"`
	AlertURL string `json:"alertUrl"`
}

// ListAlertURLs pages through recent alerts and prints, for each one, the
// console and forensic-search URLs from its aggregate view
func ListAlertURLs(ctx context.Context, params ListAlertURLsParams) error {
	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}
	out := stdout(params.Out)

	query := client.NewSimpleQuery(time.Now().Add(-alertSearchWindow))

	var alertIDs []string
	pager := sess.client.Alerts.SearchAll(ctx, query)
	err = pager.ForEach(ctx, func(page client.Page[client.Alert]) error {
		for _, alert := range page.Records {
			alertIDs = append(alertIDs, alert.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, alertID := range alertIDs {
		aggregate, err := sess.client.Alerts.GetAggregate(ctx, alertID)
		if err != nil {
			return err
		}
		record := alertURLs{
			ID:       aggregate.ID,
			FFSURL:   aggregate.FFSURLEndpoint,
			AlertURL: aggregate.AlertURL,
		}
		if err := render.Pretty(out, record); err != nil {
			return err
		}
	}

	return nil
}
