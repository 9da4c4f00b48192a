package client

import (
	"context"
	"fmt"
	"strconv"
)

// Org is one record from the /api/v1/Org listing.
type Org struct {
	OrgID            int    `json:"orgId,omitempty"`
	OrgUID           string `json:"orgUid"`
	OrgName          string `json:"orgName"`
	OrgExtRef        string `json:"orgExtRef,omitempty"`
	Status           string `json:"status,omitempty"`
	Active           bool   `json:"active,omitempty"`
	ParentOrgID      *int   `json:"parentOrgId,omitempty"`
	ParentOrgUID     string `json:"parentOrgUid,omitempty"`
	Type             string `json:"type,omitempty"`
	Classification   string `json:"classification,omitempty"`
	UserCount        int    `json:"userCount,omitempty"`
	ComputerCount    int    `json:"computerCount,omitempty"`
	OrgCount         int    `json:"orgCount,omitempty"`
	RegistrationKey  string `json:"registrationKey,omitempty"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// OrgsService lists and fetches organizations
type OrgsService struct {
	client *Client
}

type orgsEnvelope struct {
	Data struct {
		Orgs []Org `json:"orgs"`
	} `json:"data"`
}

type orgEnvelope struct {
	Data Org `json:"data"`
}

// GetAll returns a pager over every organization visible to the session
func (s *OrgsService) GetAll(ctx context.Context) *Pager[Org] {
	return newPager(DefaultPageSize, func(ctx context.Context, pgNum int) ([]Org, error) {
		var envelope orgsEnvelope
		resp, err := s.client.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"pgNum":  strconv.Itoa(pgNum),
				"pgSize": strconv.Itoa(DefaultPageSize),
			}).
			SetResult(&envelope).
			Get("/api/v1/Org")
		if err != nil {
			return nil, fmt.Errorf("list orgs: %w", err)
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}
		return envelope.Data.Orgs, nil
	})
}

// GetByUID fetches a single organization by its org UID
func (s *OrgsService) GetByUID(ctx context.Context, orgUID string) (*Org, error) {
	var envelope orgEnvelope
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetQueryParam("idType", "orgUid").
		SetResult(&envelope).
		Get("/api/v1/Org/" + orgUID)
	if err != nil {
		return nil, fmt.Errorf("get org %s: %w", orgUID, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
