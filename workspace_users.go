package twist

import (
	"context"
)

// UserType is a member's role within a workspace.
type UserType string

const (
	UserTypeGuest UserType = "GUEST"
	UserTypeUser  UserType = "USER"
	UserTypeAdmin UserType = "ADMIN"
)

type AddWorkspaceUserOptions struct {
	Email      string   `json:"email"`
	Name       string   `json:"name,omitempty"`
	UserType   UserType `json:"user_type,omitempty"`
	ChannelIDs []int64  `json:"channel_ids,omitempty"`
}

// WorkspaceUserRef identifies a workspace member by email, optionally
// disambiguated by user id.
type WorkspaceUserRef struct {
	Email  string `json:"email"`
	UserID int64  `json:"user_id,omitempty"`
}

func (r WorkspaceUserRef) validate() error {
	return firstError(
		requireText(r.Email, "email"),
		idIfSet(r.UserID, "user"),
	)
}

type UpdateWorkspaceUserOptions struct {
	UserType UserType `json:"user_type"`
	Email    string   `json:"email,omitempty"`
	UserID   int64    `json:"user_id,omitempty"`
}

type workspaceUserQuery struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func validateUserType(t UserType) error {
	return requireOneOf(t, "user type", UserTypeGuest, UserTypeUser, UserTypeAdmin)
}

func (c *Client) AddWorkspaceUser(ctx context.Context, workspaceID int64, opts AddWorkspaceUserOptions) (*User, error) {
	errs := []error{
		requireID(workspaceID, "workspace"),
		requireText(opts.Email, "email"),
	}

	if opts.UserType != "" {
		errs = append(errs, validateUserType(opts.UserType))
	}

	for _, id := range opts.ChannelIDs {
		errs = append(errs, requireID(id, "channel"))
	}

	if err := firstError(errs...); err != nil {
		return nil, err
	}

	return postResult[User](ctx, c, endpointAddWorkspaceUser, struct {
		ID int64 `json:"id"`
		AddWorkspaceUserOptions
	}{workspaceID, opts})
}

func (c *Client) ResendInvite(ctx context.Context, workspaceID int64, user WorkspaceUserRef) (*Status, error) {
	if err := firstError(requireID(workspaceID, "workspace"), user.validate()); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointResendInvite, struct {
		ID int64 `json:"id"`
		WorkspaceUserRef
	}{workspaceID, user})
}

// UpdateWorkspaceUser changes a member's role. The member is identified by
// Email or UserID.
func (c *Client) UpdateWorkspaceUser(ctx context.Context, workspaceID int64, opts UpdateWorkspaceUserOptions) (*User, error) {
	if err := firstError(
		requireID(workspaceID, "workspace"),
		validateUserType(opts.UserType),
		nonBlankIfSet(opts.Email, "email"),
		idIfSet(opts.UserID, "user"),
	); err != nil {
		return nil, err
	}

	return postResult[User](ctx, c, endpointUpdateWorkspaceUser, struct {
		ID int64 `json:"id"`
		UpdateWorkspaceUserOptions
	}{workspaceID, opts})
}

func (c *Client) RemoveWorkspaceUser(ctx context.Context, workspaceID int64, user WorkspaceUserRef) (*Status, error) {
	if err := firstError(requireID(workspaceID, "workspace"), user.validate()); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointRemoveWorkspaceUser, struct {
		ID int64 `json:"id"`
		WorkspaceUserRef
	}{workspaceID, user})
}

func (c *Client) GetUserByEmail(ctx context.Context, workspaceID int64, email string) (*User, error) {
	if err := firstError(
		requireID(workspaceID, "workspace"),
		requireText(email, "email"),
	); err != nil {
		return nil, err
	}

	return getResult[User](ctx, c, endpointGetUserByEmail, map[string]any{
		"id":    workspaceID,
		"email": email,
	})
}

func (c *Client) GetUserByID(ctx context.Context, workspaceID, userID int64) (*User, error) {
	if err := validateWorkspaceUser(workspaceID, userID); err != nil {
		return nil, err
	}

	return getResult[User](ctx, c, endpointGetUserByID, workspaceUserQuery{ID: workspaceID, UserID: userID})
}

func (c *Client) GetUserInfo(ctx context.Context, workspaceID, userID int64) (*User, error) {
	if err := validateWorkspaceUser(workspaceID, userID); err != nil {
		return nil, err
	}

	return getResult[User](ctx, c, endpointGetUserInfo, workspaceUserQuery{ID: workspaceID, UserID: userID})
}

// GetUserLocalTime returns the member's wall-clock time as reported by the
// server, e.g. "2017-05-10 07:55:40".
func (c *Client) GetUserLocalTime(ctx context.Context, workspaceID, userID int64) (string, error) {
	if err := validateWorkspaceUser(workspaceID, userID); err != nil {
		return "", err
	}

	var out string
	if err := c.get(ctx, endpointGetUserLocalTime, workspaceUserQuery{ID: workspaceID, UserID: userID}, &out); err != nil {
		return "", err
	}

	return out, nil
}

func validateWorkspaceUser(workspaceID, userID int64) error {
	return firstError(
		requireID(workspaceID, "workspace"),
		requireID(userID, "user"),
	)
}
