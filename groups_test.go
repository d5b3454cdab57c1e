package twist

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGroups(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.respond("groups/getone", `{"id":5,"name":"Design","user_ids":[1,2],"workspace_id":4}`)
	api.respond("groups/get", `[{"id":5},{"id":6}]`)

	group, err := client.GetGroup(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, group.UserIDs)
	assert.Equal(t, http.MethodGet, api.last(t).Method)

	groups, err := client.GetAllGroups(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	req := api.last(t)
	assert.Equal(t, "4", req.Params.Get("workspace_id"))
	assert.False(t, req.Params.Has("id"))
}

func TestAddGroup(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.respond("groups/add", `{"id":7,"name":"Ops"}`)

	group, err := client.AddGroup(context.Background(), 4, AddGroupOptions{Name: "Ops", UserIDs: []int64{3}})
	require.NoError(t, err)
	assert.Equal(t, "Ops", group.Name)

	req := api.last(t)
	assert.Equal(t, "4", req.Params.Get("workspace_id"))
	assert.Equal(t, "[3]", req.Params.Get("user_ids"))

	_, err = client.AddGroup(context.Background(), 4, AddGroupOptions{Name: ""})
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = client.AddGroup(context.Background(), 4, AddGroupOptions{Name: "Ops", UserIDs: []int64{-3}})
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Equal(t, 1, api.count())
}

func TestUpdateAndRemoveGroup(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.respond("groups/update", `{"id":7,"name":"SRE"}`)

	group, err := client.UpdateGroup(context.Background(), 7, "SRE")
	require.NoError(t, err)
	assert.Equal(t, "SRE", group.Name)
	assert.Equal(t, "SRE", api.last(t).Params.Get("name"))

	_, err = client.RemoveGroup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "groups/remove", api.last(t).Path)

	_, err = client.UpdateGroup(context.Background(), 7, " ")
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.Equal(t, 2, api.count())
}

func TestGroupMembers(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)

	_, err := client.AddUserToGroup(context.Background(), 7, 3)
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, "groups/add_user", req.Path)
	assert.Equal(t, "7", req.Params.Get("id"))
	assert.Equal(t, "3", req.Params.Get("user_id"))

	_, err = client.AddUsersToGroup(context.Background(), 7, []int64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[3,4]", api.last(t).Params.Get("user_ids"))

	_, err = client.RemoveUserFromGroup(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "groups/remove_user", api.last(t).Path)

	_, err = client.RemoveUsersFromGroup(context.Background(), 7, []int64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, "groups/remove_users", api.last(t).Path)

	_, err = client.AddUsersToGroup(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = client.RemoveUsersFromGroup(context.Background(), 7, []int64{3, 0})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = client.AddUserToGroup(context.Background(), 0, 3)
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Equal(t, 4, api.count())
}
