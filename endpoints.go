package twist

// Endpoint paths, relative to the base URL.
const (
	endpointGetSessionUser       = "users/get_session_user"
	endpointUpdateUser           = "users/update"
	endpointUpdatePassword       = "users/update_password"
	endpointSetPresence          = "users/heartbeat"
	endpointResetPresence        = "users/reset_presence"
	endpointResetPassword        = "users/reset_password"
	endpointSetPassword          = "users/set_password"
	endpointIsConnectedToGoogle  = "users/is_connected_to_google"
	endpointDisconnectFromGoogle = "users/disconnect_google"

	endpointGetWorkspace        = "workspaces/getone"
	endpointGetDefaultWorkspace = "workspaces/get_default"
	endpointGetAllWorkspaces    = "workspaces/get"
	endpointAddWorkspace        = "workspaces/add"
	endpointUpdateWorkspace     = "workspaces/update"
	endpointRemoveWorkspace     = "workspaces/remove"
	endpointGetWorkspaceUsers   = "workspaces/get_users"
	endpointGetPublicChannels   = "workspaces/get_public_channels"
	endpointAddWorkspaceUser    = "workspaces/add_user"
	endpointResendInvite        = "workspaces/resend_invite"
	endpointUpdateWorkspaceUser = "workspaces/update_user"
	endpointRemoveWorkspaceUser = "workspaces/remove_user"
	endpointGetUserByEmail      = "workspaces/get_user_by_email"
	endpointGetUserByID         = "workspaces/get_user_by_id"
	endpointGetUserInfo         = "workspaces/get_user_info"
	endpointGetUserLocalTime    = "workspaces/get_user_local_time"

	endpointGetGroup             = "groups/getone"
	endpointGetAllGroups         = "groups/get"
	endpointAddGroup             = "groups/add"
	endpointUpdateGroup          = "groups/update"
	endpointRemoveGroup          = "groups/remove"
	endpointAddUserToGroup       = "groups/add_user"
	endpointAddUsersToGroup      = "groups/add_users"
	endpointRemoveUserFromGroup  = "groups/remove_user"
	endpointRemoveUsersFromGroup = "groups/remove_users"

	endpointGetChannel             = "channels/getone"
	endpointGetAllChannels         = "channels/get"
	endpointAddChannel             = "channels/add"
	endpointUpdateChannel          = "channels/update"
	endpointArchiveChannel         = "channels/archive"
	endpointUnarchiveChannel       = "channels/unarchive"
	endpointRemoveChannel          = "channels/remove"
	endpointAddUserToChannel       = "channels/add_user"
	endpointAddUsersToChannel      = "channels/add_users"
	endpointRemoveUserFromChannel  = "channels/remove_user"
	endpointRemoveUsersFromChannel = "channels/remove_users"

	endpointGetThread          = "threads/getone"
	endpointGetAllThreads      = "threads/get"
	endpointAddThread          = "threads/add"
	endpointUpdateThread       = "threads/update"
	endpointRemoveThread       = "threads/remove"
	endpointStarThread         = "threads/star"
	endpointUnstarThread       = "threads/unstar"
	endpointMoveThread         = "threads/move_to_channel"
	endpointGetUnreadThreads   = "threads/get_unread"
	endpointMarkThreadRead     = "threads/mark_read"
	endpointMarkThreadUnread   = "threads/mark_unread"
	endpointMarkAllThreadsRead = "threads/mark_all_read"
	endpointClearUnreadThreads = "threads/clear_unread"
	endpointMuteThread         = "threads/mute"
	endpointUnmuteThread       = "threads/unmute"

	endpointGetComment          = "comments/getone"
	endpointGetAllComments      = "comments/get"
	endpointAddComment          = "comments/add"
	endpointUpdateComment       = "comments/update"
	endpointRemoveComment       = "comments/remove"
	endpointMarkCommentPosition = "comments/mark_position"

	endpointGetConversation     = "conversations/getone"
	endpointGetAllConversations = "conversations/get"
)
