package twist

import (
	"context"
	"encoding/json"
)

// API is the full operation surface of the Twist client. [Client] is the
// only implementation; the interface exists so consumers can substitute a
// fake in their own tests.
type API interface {
	AuthURL(scopes []Scope, state string) (string, error)
	ExchangeToken(ctx context.Context, code string) (*Token, error)
	SetAccessToken(token string)
	AccessToken() string
	HasAccessToken() bool

	Do(ctx context.Context, method, endpoint string, payload any, authRequired bool) (json.RawMessage, error)

	GetSessionUser(ctx context.Context) (*User, error)
	UpdateUser(ctx context.Context, opts UpdateUserOptions) (*User, error)
	UpdatePassword(ctx context.Context, newPassword string) (*User, error)
	SetPresence(ctx context.Context, workspaceID int64, platform Platform) (*Status, error)
	ResetPresence(ctx context.Context, workspaceID int64) (*Status, error)
	ResetPassword(ctx context.Context, email string) (*Status, error)
	SetPasswordByCode(ctx context.Context, resetCode, newPassword string) (*User, error)
	CheckGoogleConnection(ctx context.Context) (*GoogleConnection, error)
	DisconnectGoogle(ctx context.Context) (*Status, error)

	GetWorkspace(ctx context.Context, workspaceID int64) (*Workspace, error)
	GetDefaultWorkspace(ctx context.Context) (*Workspace, error)
	GetAllWorkspaces(ctx context.Context) ([]Workspace, error)
	AddWorkspace(ctx context.Context, opts AddWorkspaceOptions) (*Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID int64, opts UpdateWorkspaceOptions) (*Workspace, error)
	RemoveWorkspace(ctx context.Context, workspaceID int64, currentPassword string) (*Status, error)
	GetWorkspaceUsers(ctx context.Context, workspaceID int64) ([]User, error)
	GetPublicChannels(ctx context.Context, workspaceID int64) ([]Channel, error)

	AddWorkspaceUser(ctx context.Context, workspaceID int64, opts AddWorkspaceUserOptions) (*User, error)
	ResendInvite(ctx context.Context, workspaceID int64, user WorkspaceUserRef) (*Status, error)
	UpdateWorkspaceUser(ctx context.Context, workspaceID int64, opts UpdateWorkspaceUserOptions) (*User, error)
	RemoveWorkspaceUser(ctx context.Context, workspaceID int64, user WorkspaceUserRef) (*Status, error)
	GetUserByEmail(ctx context.Context, workspaceID int64, email string) (*User, error)
	GetUserByID(ctx context.Context, workspaceID, userID int64) (*User, error)
	GetUserInfo(ctx context.Context, workspaceID, userID int64) (*User, error)
	GetUserLocalTime(ctx context.Context, workspaceID, userID int64) (string, error)

	GetGroup(ctx context.Context, groupID int64) (*Group, error)
	GetAllGroups(ctx context.Context, workspaceID int64) ([]Group, error)
	AddGroup(ctx context.Context, workspaceID int64, opts AddGroupOptions) (*Group, error)
	UpdateGroup(ctx context.Context, groupID int64, name string) (*Group, error)
	RemoveGroup(ctx context.Context, groupID int64) (*Status, error)
	AddUserToGroup(ctx context.Context, groupID, userID int64) (*Status, error)
	AddUsersToGroup(ctx context.Context, groupID int64, userIDs []int64) (*Status, error)
	RemoveUserFromGroup(ctx context.Context, groupID, userID int64) (*Status, error)
	RemoveUsersFromGroup(ctx context.Context, groupID int64, userIDs []int64) (*Status, error)

	GetChannel(ctx context.Context, channelID int64) (*Channel, error)
	GetAllChannels(ctx context.Context, workspaceID int64, opts GetChannelsOptions) ([]Channel, error)
	AddChannel(ctx context.Context, workspaceID int64, opts AddChannelOptions) (*Channel, error)
	UpdateChannel(ctx context.Context, channelID int64, opts UpdateChannelOptions) (*Channel, error)
	ArchiveChannel(ctx context.Context, channelID int64) (*Status, error)
	UnarchiveChannel(ctx context.Context, channelID int64) (*Status, error)
	RemoveChannel(ctx context.Context, channelID int64) (*Status, error)
	AddUserToChannel(ctx context.Context, channelID, userID int64) (*Status, error)
	AddUsersToChannel(ctx context.Context, channelID int64, userIDs []int64) (*Status, error)
	RemoveUserFromChannel(ctx context.Context, channelID, userID int64) (*Status, error)
	RemoveUsersFromChannel(ctx context.Context, channelID int64, userIDs []int64) (*Status, error)

	GetThread(ctx context.Context, threadID int64) (*Thread, error)
	GetAllThreads(ctx context.Context, channelID int64, opts GetThreadsOptions) ([]Thread, error)
	AddThread(ctx context.Context, channelID int64, opts AddThreadOptions) (*Thread, error)
	UpdateThread(ctx context.Context, threadID int64, opts UpdateThreadOptions) (*Thread, error)
	RemoveThread(ctx context.Context, threadID int64) (*Status, error)
	StarThread(ctx context.Context, threadID int64) (*Status, error)
	UnstarThread(ctx context.Context, threadID int64) (*Status, error)
	MoveThread(ctx context.Context, threadID, toChannelID int64) (*Status, error)
	GetUnreadThreads(ctx context.Context, workspaceID int64) ([]UnreadThread, error)
	MarkThreadRead(ctx context.Context, threadID int64, objIndex int) (*Status, error)
	MarkThreadUnread(ctx context.Context, threadID int64, objIndex int) (*Status, error)
	MarkAllThreadsRead(ctx context.Context, opts MarkAllThreadsReadOptions) (*Status, error)
	ClearUnreadThreads(ctx context.Context, workspaceID int64) (*Status, error)
	MuteThread(ctx context.Context, threadID int64, minutes int) (*Thread, error)
	UnmuteThread(ctx context.Context, threadID int64) (*Thread, error)

	GetComment(ctx context.Context, commentID int64) (*Comment, error)
	GetAllComments(ctx context.Context, threadID int64, opts GetCommentsOptions) ([]Comment, error)
	AddComment(ctx context.Context, threadID int64, opts AddCommentOptions) (*Comment, error)
	UpdateComment(ctx context.Context, commentID int64, opts UpdateCommentOptions) (*Comment, error)
	RemoveComment(ctx context.Context, commentID int64) (*Status, error)
	MarkCommentPosition(ctx context.Context, threadID, commentID int64) (*Status, error)

	GetConversation(ctx context.Context, conversationID int64) (*Conversation, error)
	GetAllConversations(ctx context.Context, workspaceID int64, opts GetConversationsOptions) ([]Conversation, error)
}
