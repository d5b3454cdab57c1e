package twist

import (
	"context"
)

type GetChannelsOptions struct {
	Archived *bool `json:"archived,omitempty"`
}

type AddChannelOptions struct {
	Name        string  `json:"name"`
	TempID      *int64  `json:"temp_id,omitempty"`
	UserIDs     []int64 `json:"user_ids,omitempty"`
	Color       *int    `json:"color,omitempty"`
	Public      *bool   `json:"public,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateChannelOptions holds the channel fields to change. At least one must
// be set.
type UpdateChannelOptions struct {
	Name        *string `json:"name,omitempty"`
	Color       *int    `json:"color,omitempty"`
	Public      *bool   `json:"public,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) GetChannel(ctx context.Context, channelID int64) (*Channel, error) {
	if err := requireID(channelID, "channel"); err != nil {
		return nil, err
	}

	return getResult[Channel](ctx, c, endpointGetChannel, idPayload{ID: channelID})
}

func (c *Client) GetAllChannels(ctx context.Context, workspaceID int64, opts GetChannelsOptions) ([]Channel, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[Channel](ctx, c, endpointGetAllChannels, struct {
		WorkspaceID int64 `json:"workspace_id"`
		GetChannelsOptions
	}{workspaceID, opts})
}

func (c *Client) AddChannel(ctx context.Context, workspaceID int64, opts AddChannelOptions) (*Channel, error) {
	errs := []error{
		requireID(workspaceID, "workspace"),
		requireText(opts.Name, "name"),
	}

	for _, id := range opts.UserIDs {
		errs = append(errs, requireID(id, "user"))
	}

	if err := firstError(errs...); err != nil {
		return nil, err
	}

	return postResult[Channel](ctx, c, endpointAddChannel, struct {
		WorkspaceID int64 `json:"workspace_id"`
		AddChannelOptions
	}{workspaceID, opts})
}

func (c *Client) UpdateChannel(ctx context.Context, channelID int64, opts UpdateChannelOptions) (*Channel, error) {
	if err := firstError(
		requireID(channelID, "channel"),
		requireAny("name, color, public or description",
			opts.Name != nil, opts.Color != nil, opts.Public != nil, opts.Description != nil),
		optionalText(opts.Name, "name"),
	); err != nil {
		return nil, err
	}

	return postResult[Channel](ctx, c, endpointUpdateChannel, struct {
		ID int64 `json:"id"`
		UpdateChannelOptions
	}{channelID, opts})
}

func (c *Client) ArchiveChannel(ctx context.Context, channelID int64) (*Status, error) {
	return c.channelAction(ctx, endpointArchiveChannel, channelID)
}

func (c *Client) UnarchiveChannel(ctx context.Context, channelID int64) (*Status, error) {
	return c.channelAction(ctx, endpointUnarchiveChannel, channelID)
}

func (c *Client) RemoveChannel(ctx context.Context, channelID int64) (*Status, error) {
	return c.channelAction(ctx, endpointRemoveChannel, channelID)
}

func (c *Client) AddUserToChannel(ctx context.Context, channelID, userID int64) (*Status, error) {
	return c.changeMember(ctx, endpointAddUserToChannel, "channel", channelID, userID)
}

func (c *Client) AddUsersToChannel(ctx context.Context, channelID int64, userIDs []int64) (*Status, error) {
	return c.changeMembers(ctx, endpointAddUsersToChannel, "channel", channelID, userIDs)
}

func (c *Client) RemoveUserFromChannel(ctx context.Context, channelID, userID int64) (*Status, error) {
	return c.changeMember(ctx, endpointRemoveUserFromChannel, "channel", channelID, userID)
}

func (c *Client) RemoveUsersFromChannel(ctx context.Context, channelID int64, userIDs []int64) (*Status, error) {
	return c.changeMembers(ctx, endpointRemoveUsersFromChannel, "channel", channelID, userIDs)
}

func (c *Client) channelAction(ctx context.Context, endpoint string, channelID int64) (*Status, error) {
	if err := requireID(channelID, "channel"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpoint, idPayload{ID: channelID})
}
