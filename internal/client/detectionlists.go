package client

import (
	"context"
	"fmt"
)

// DetectionListUser is the detection-list profile of one user, including
// the directory attributes the platform syncs for them.
type DetectionListUser struct {
	Type               string   `json:"type$,omitempty"`
	TenantID           string   `json:"tenantId,omitempty"`
	UserID             string   `json:"userId"`
	Username           string   `json:"userName,omitempty"`
	DisplayName        string   `json:"displayName,omitempty"`
	CloudUsernames     []string `json:"cloudUsernames,omitempty"`
	ManagerUsername    string   `json:"managerUsername,omitempty"`
	ManagerDisplayName string   `json:"managerDisplayName,omitempty"`
	Title              string   `json:"title,omitempty"`
	Division           string   `json:"division,omitempty"`
	Department         string   `json:"department,omitempty"`
	EmploymentType     string   `json:"employmentType,omitempty"`
	City               string   `json:"city,omitempty"`
	State              string   `json:"state,omitempty"`
	Country            string   `json:"country,omitempty"`
	RiskFactors        []string `json:"riskFactors,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// DetectionListsService fetches detection-list user profiles
type DetectionListsService struct {
	client *Client
}

type getUserByIDRequest struct {
	UserID string `json:"userId"`
}

// GetUserByID fetches the detection-list profile for a user UID
func (s *DetectionListsService) GetUserByID(ctx context.Context, userUID string) (*DetectionListUser, error) {
	var result DetectionListUser
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetBody(getUserByIDRequest{UserID: userUID}).
		SetResult(&result).
		Post("/svc/api/v2/user/getbyid")
	if err != nil {
		return nil, fmt.Errorf("get detection-list user %s: %w", userUID, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &result, nil
}
