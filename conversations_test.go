package twist

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConversation(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.respond("conversations/getone", `{
		"id": 77,
		"user_ids": [1, 2],
		"last_message": {"id": 9, "content": "ping", "direct_mentions": [{"id": 1}]},
		"muted_until_ts": null
	}`)

	conv, err := client.GetConversation(context.Background(), 77)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, conv.UserIDs)
	assert.Equal(t, "ping", conv.LastMessage.Content)
	assert.Len(t, conv.LastMessage.DirectMentions, 1)
	assert.Nil(t, conv.MutedUntilTS)

	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "77", req.Params.Get("id"))
}

func TestGetAllConversations(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.respond("conversations/get", `[{"id":77},{"id":78,"archived":true}]`)

	convs, err := client.GetAllConversations(context.Background(), 4, GetConversationsOptions{Archived: ptr(false)})
	require.NoError(t, err)
	assert.Len(t, convs, 2)

	req := api.last(t)
	assert.Equal(t, "4", req.Params.Get("workspace_id"))
	assert.Equal(t, "false", req.Params.Get("archived"))

	_, err = client.GetAllConversations(context.Background(), 0, GetConversationsOptions{})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = client.GetConversation(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Equal(t, 1, api.count())
}
