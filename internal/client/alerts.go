package client

import (
	"context"
	"fmt"
	"time"
)

// Alert is one summary record from an alert search.
type Alert struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Severity      string `json:"severity,omitempty"`
	State         string `json:"state,omitempty"`
	Type          string `json:"type,omitempty"`
	ActorUsername string `json:"actor,omitempty"`
	Target        string `json:"target,omitempty"`
	TenantID      string `json:"tenantId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	RuleID        string `json:"ruleId,omitempty"`
	RuleSource    string `json:"ruleSource,omitempty"`
}

// AlertAggregate is the aggregated details view of a single alert,
// including the console and forensic-search URLs derived for it.
type AlertAggregate struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	Severity       string `json:"severity,omitempty"`
	State          string `json:"state,omitempty"`
	ActorUsername  string `json:"actor,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	FFSURLEndpoint string `json:"ffsUrlEndpoint,omitempty"`
	AlertURL       string `json:"alertUrl,omitempty"`
	ObservedCount  int    `json:"observedCount,omitempty"`
}

// Query is an alert search query document.
type Query struct {
	TenantID     string        `json:"tenantId,omitempty"`
	GroupClause  string        `json:"groupClause"`
	Groups       []FilterGroup `json:"groups"`
	PgNum        int           `json:"pgNum"`
	PgSize       int           `json:"pgSize"`
	SrtDirection string        `json:"srtDirection"`
	SrtKey       string        `json:"srtKey"`
}

// FilterGroup is one clause group within a Query
type FilterGroup struct {
	FilterClause string   `json:"filterClause"`
	Filters      []Filter `json:"filters"`
}

// Filter is one term within a FilterGroup
type Filter struct {
	Term     string `json:"term"`
	Operator string `json:"operator"`
	Value    string `json:"value,omitempty"`
}

// NewSimpleQuery builds a query matching every alert created at or after
// begin, newest first.
func NewSimpleQuery(begin time.Time) Query {
	return Query{
		GroupClause: "AND",
		Groups: []FilterGroup{
			{
				FilterClause: "AND",
				Filters: []Filter{
					{
						Term:     "createdAt",
						Operator: "ON_OR_AFTER",
						Value:    begin.UTC().Format(time.RFC3339),
					},
				},
			},
		},
		PgSize:       DefaultPageSize,
		SrtDirection: "desc",
		SrtKey:       "CreatedAt",
	}
}

// AlertsService searches alerts and fetches aggregated alert details
type AlertsService struct {
	client *Client
}

// SearchResponse is one page of alert search results
type SearchResponse struct {
	Alerts       []Alert `json:"alerts"`
	TotalCount   int     `json:"totalCount,omitempty"`
	ProblemCount int     `json:"problemCount,omitempty"`
}

type aggregateRequest struct {
	AlertID string `json:"alertId"`
}

type aggregateResponse struct {
	Alert AlertAggregate `json:"alert"`
}

// Search runs the query against one result page. Page numbers start at 1.
func (s *AlertsService) Search(ctx context.Context, query Query, pgNum int) (*SearchResponse, error) {
	query.PgNum = pgNum
	if query.PgSize == 0 {
		query.PgSize = DefaultPageSize
	}

	var result SearchResponse
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetBody(query).
		SetResult(&result).
		Post("/svc/api/v1/query-alerts")
	if err != nil {
		return nil, fmt.Errorf("search alerts: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchAll returns a pager over every alert the query matches
func (s *AlertsService) SearchAll(ctx context.Context, query Query) *Pager[Alert] {
	return newPager(DefaultPageSize, func(ctx context.Context, pgNum int) ([]Alert, error) {
		result, err := s.Search(ctx, query, pgNum)
		if err != nil {
			return nil, err
		}
		return result.Alerts, nil
	})
}

// GetAggregate fetches the aggregated details view of one alert
func (s *AlertsService) GetAggregate(ctx context.Context, alertID string) (*AlertAggregate, error) {
	var result aggregateResponse
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetBody(aggregateRequest{AlertID: alertID}).
		SetResult(&result).
		Post("/svc/api/v1/query-details-aggregate")
	if err != nil {
		return nil, fmt.Errorf("get alert aggregate %s: %w", alertID, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &result.Alert, nil
}
