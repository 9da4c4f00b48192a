package client

import (
	"context"
	"fmt"
	"strconv"
)

// User is one record from the /api/v1/User directory listing.
type User struct {
	UserID           int    `json:"userId,omitempty"`
	UserUID          string `json:"userUid"`
	Username         string `json:"username"`
	Email            string `json:"email,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	OrgID            int    `json:"orgId,omitempty"`
	OrgUID           string `json:"orgUid,omitempty"`
	Status           string `json:"status,omitempty"`
	Active           bool   `json:"active,omitempty"`
	Blocked          bool   `json:"blocked,omitempty"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// UsersService lists users from the directory
type UsersService struct {
	client *Client
}

// v1 directory endpoints wrap their payload in a "data" envelope
type usersEnvelope struct {
	Data struct {
		Users []User `json:"users"`
	} `json:"data"`
}

// GetAll returns a pager over every user visible to the session
func (s *UsersService) GetAll(ctx context.Context) *Pager[User] {
	return newPager(DefaultPageSize, func(ctx context.Context, pgNum int) ([]User, error) {
		var envelope usersEnvelope
		resp, err := s.client.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"pgNum":  strconv.Itoa(pgNum),
				"pgSize": strconv.Itoa(DefaultPageSize),
			}).
			SetResult(&envelope).
			Get("/api/v1/User")
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}
		return envelope.Data.Users, nil
	})
}
