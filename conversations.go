package twist

import (
	"context"
)

type GetConversationsOptions struct {
	Archived *bool `json:"archived,omitempty"`
}

func (c *Client) GetConversation(ctx context.Context, conversationID int64) (*Conversation, error) {
	if err := requireID(conversationID, "conversation"); err != nil {
		return nil, err
	}

	return getResult[Conversation](ctx, c, endpointGetConversation, idPayload{ID: conversationID})
}

func (c *Client) GetAllConversations(ctx context.Context, workspaceID int64, opts GetConversationsOptions) ([]Conversation, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[Conversation](ctx, c, endpointGetAllConversations, struct {
		WorkspaceID int64 `json:"workspace_id"`
		GetConversationsOptions
	}{workspaceID, opts})
}
