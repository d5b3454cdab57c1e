package twist

import (
	"context"
)

type AddWorkspaceOptions struct {
	Name   string `json:"name"`
	TempID *int64 `json:"temp_id,omitempty"`
	Color  *int   `json:"color,omitempty"`
}

// UpdateWorkspaceOptions holds the workspace fields to change. At least one
// must be set.
type UpdateWorkspaceOptions struct {
	Name  *string `json:"name,omitempty"`
	Color *int    `json:"color,omitempty"`
}

func (c *Client) GetWorkspace(ctx context.Context, workspaceID int64) (*Workspace, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getResult[Workspace](ctx, c, endpointGetWorkspace, idPayload{ID: workspaceID})
}

func (c *Client) GetDefaultWorkspace(ctx context.Context) (*Workspace, error) {
	return getResult[Workspace](ctx, c, endpointGetDefaultWorkspace, nil)
}

func (c *Client) GetAllWorkspaces(ctx context.Context) ([]Workspace, error) {
	return getList[Workspace](ctx, c, endpointGetAllWorkspaces, nil)
}

func (c *Client) AddWorkspace(ctx context.Context, opts AddWorkspaceOptions) (*Workspace, error) {
	if err := requireText(opts.Name, "name"); err != nil {
		return nil, err
	}

	return postResult[Workspace](ctx, c, endpointAddWorkspace, opts)
}

func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID int64, opts UpdateWorkspaceOptions) (*Workspace, error) {
	if err := firstError(
		requireID(workspaceID, "workspace"),
		requireAny("name or color", opts.Name != nil, opts.Color != nil),
		optionalText(opts.Name, "name"),
	); err != nil {
		return nil, err
	}

	return postResult[Workspace](ctx, c, endpointUpdateWorkspace, struct {
		ID int64 `json:"id"`
		UpdateWorkspaceOptions
	}{workspaceID, opts})
}

// RemoveWorkspace deletes a workspace. The server requires the session
// user's current password as confirmation.
func (c *Client) RemoveWorkspace(ctx context.Context, workspaceID int64, currentPassword string) (*Status, error) {
	if err := firstError(
		requireID(workspaceID, "workspace"),
		requireText(currentPassword, "password"),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointRemoveWorkspace, map[string]any{
		"id":               workspaceID,
		"current_password": currentPassword,
	})
}

func (c *Client) GetWorkspaceUsers(ctx context.Context, workspaceID int64) ([]User, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[User](ctx, c, endpointGetWorkspaceUsers, idPayload{ID: workspaceID})
}

func (c *Client) GetPublicChannels(ctx context.Context, workspaceID int64) ([]Channel, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[Channel](ctx, c, endpointGetPublicChannels, idPayload{ID: workspaceID})
}
