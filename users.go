package twist

import (
	"context"
)

// Platform identifies the device a presence heartbeat comes from.
type Platform string

const (
	PlatformMobile  Platform = "mobile"
	PlatformDesktop Platform = "desktop"
	PlatformAPI     Platform = "api"
)

// UpdateUserOptions holds the profile fields to change. Unset fields are
// left untouched on the server; at least one must be set.
type UpdateUserOptions struct {
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email,omitempty"`
	Password         string    `json:"password,omitempty"`
	DefaultWorkspace int64     `json:"default_workspace,omitempty"`
	Profession       string    `json:"profession,omitempty"`
	ContactInfo      string    `json:"contact_info,omitempty"`
	Timezone         string    `json:"timezone,omitempty"`
	SnoozeUntil      *int64    `json:"snooze_until,omitempty"`
	SnoozeDNDStart   string    `json:"snooze_dnd_start,omitempty"`
	SnoozeDNDEnd     string    `json:"snooze_dnd_end,omitempty"`
	AwayMode         *AwayMode `json:"away_mode,omitempty"`
	OffDays          []int     `json:"off_days,omitempty"`
}

func (o UpdateUserOptions) validate() error {
	return firstError(
		requireAny("name, email, password, default_workspace, profession, contact_info, timezone, snooze or away mode, off_days",
			o.Name != "", o.Email != "", o.Password != "", o.DefaultWorkspace != 0,
			o.Profession != "", o.ContactInfo != "", o.Timezone != "",
			o.SnoozeUntil != nil, o.SnoozeDNDStart != "", o.SnoozeDNDEnd != "",
			o.AwayMode != nil, len(o.OffDays) > 0),
		nonBlankIfSet(o.Name, "name"),
		nonBlankIfSet(o.Email, "email"),
		nonBlankIfSet(o.Password, "password"),
		idIfSet(o.DefaultWorkspace, "default workspace"),
	)
}

func (c *Client) GetSessionUser(ctx context.Context) (*User, error) {
	return getResult[User](ctx, c, endpointGetSessionUser, nil)
}

func (c *Client) UpdateUser(ctx context.Context, opts UpdateUserOptions) (*User, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return postResult[User](ctx, c, endpointUpdateUser, opts)
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) (*User, error) {
	if err := requireText(newPassword, "password"); err != nil {
		return nil, err
	}

	return postResult[User](ctx, c, endpointUpdatePassword, map[string]any{
		"new_password": newPassword,
	})
}

// SetPresence sends a heartbeat marking the session user active in workspaceID.
func (c *Client) SetPresence(ctx context.Context, workspaceID int64, platform Platform) (*Status, error) {
	if err := firstError(
		requireID(workspaceID, "workspace"),
		requireOneOf(platform, "platform", PlatformMobile, PlatformDesktop, PlatformAPI),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointSetPresence, map[string]any{
		"workspace_id": workspaceID,
		"platform":     string(platform),
	})
}

func (c *Client) ResetPresence(ctx context.Context, workspaceID int64) (*Status, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointResetPresence, map[string]any{
		"workspace_id": workspaceID,
	})
}

// ResetPassword asks the server to email a reset code. It needs no access
// token.
func (c *Client) ResetPassword(ctx context.Context, email string) (*Status, error) {
	if err := requireText(email, "email"); err != nil {
		return nil, err
	}

	var out Status
	if err := c.postAnonymous(ctx, endpointResetPassword, map[string]any{"email": email}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SetPasswordByCode completes a password reset started with
// [Client.ResetPassword]. It needs no access token.
func (c *Client) SetPasswordByCode(ctx context.Context, resetCode, newPassword string) (*User, error) {
	if err := firstError(
		requireText(resetCode, "reset code"),
		requireText(newPassword, "new password"),
	); err != nil {
		return nil, err
	}

	var out User
	if err := c.postAnonymous(ctx, endpointSetPassword, map[string]any{
		"reset_code":   resetCode,
		"new_password": newPassword,
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CheckGoogleConnection(ctx context.Context) (*GoogleConnection, error) {
	return getResult[GoogleConnection](ctx, c, endpointIsConnectedToGoogle, nil)
}

func (c *Client) DisconnectGoogle(ctx context.Context) (*Status, error) {
	return postResult[Status](ctx, c, endpointDisconnectFromGoogle, nil)
}
