package twist

import (
	"context"
)

type AddGroupOptions struct {
	Name    string  `json:"name"`
	UserIDs []int64 `json:"user_ids,omitempty"`
}

type memberPayload struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

type membersPayload struct {
	ID      int64   `json:"id"`
	UserIDs []int64 `json:"user_ids"`
}

func (c *Client) GetGroup(ctx context.Context, groupID int64) (*Group, error) {
	if err := requireID(groupID, "group"); err != nil {
		return nil, err
	}

	return getResult[Group](ctx, c, endpointGetGroup, idPayload{ID: groupID})
}

func (c *Client) GetAllGroups(ctx context.Context, workspaceID int64) ([]Group, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[Group](ctx, c, endpointGetAllGroups, map[string]any{
		"workspace_id": workspaceID,
	})
}

func (c *Client) AddGroup(ctx context.Context, workspaceID int64, opts AddGroupOptions) (*Group, error) {
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

	return postResult[Group](ctx, c, endpointAddGroup, struct {
		WorkspaceID int64 `json:"workspace_id"`
		AddGroupOptions
	}{workspaceID, opts})
}

func (c *Client) UpdateGroup(ctx context.Context, groupID int64, name string) (*Group, error) {
	if err := firstError(
		requireID(groupID, "group"),
		requireText(name, "name"),
	); err != nil {
		return nil, err
	}

	return postResult[Group](ctx, c, endpointUpdateGroup, map[string]any{
		"id":   groupID,
		"name": name,
	})
}

func (c *Client) RemoveGroup(ctx context.Context, groupID int64) (*Status, error) {
	if err := requireID(groupID, "group"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointRemoveGroup, idPayload{ID: groupID})
}

func (c *Client) AddUserToGroup(ctx context.Context, groupID, userID int64) (*Status, error) {
	return c.changeMember(ctx, endpointAddUserToGroup, "group", groupID, userID)
}

func (c *Client) AddUsersToGroup(ctx context.Context, groupID int64, userIDs []int64) (*Status, error) {
	return c.changeMembers(ctx, endpointAddUsersToGroup, "group", groupID, userIDs)
}

func (c *Client) RemoveUserFromGroup(ctx context.Context, groupID, userID int64) (*Status, error) {
	return c.changeMember(ctx, endpointRemoveUserFromGroup, "group", groupID, userID)
}

func (c *Client) RemoveUsersFromGroup(ctx context.Context, groupID int64, userIDs []int64) (*Status, error) {
	return c.changeMembers(ctx, endpointRemoveUsersFromGroup, "group", groupID, userIDs)
}

// changeMember adds or removes one user on a group or channel.
func (c *Client) changeMember(ctx context.Context, endpoint, entity string, id, userID int64) (*Status, error) {
	if err := firstError(
		requireID(id, entity),
		requireID(userID, "user"),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpoint, memberPayload{ID: id, UserID: userID})
}

func (c *Client) changeMembers(ctx context.Context, endpoint, entity string, id int64, userIDs []int64) (*Status, error) {
	if err := firstError(
		requireID(id, entity),
		requireIDs(userIDs, "user"),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpoint, membersPayload{ID: id, UserIDs: userIDs})
}
