package twist

import (
	"context"
)

// ThreadFilter narrows the threads returned by [Client.GetAllThreads].
type ThreadFilter string

const (
	ThreadFilterAttachedToMe ThreadFilter = "attached_to_me"
	ThreadFilterEveryone     ThreadFilter = "everyone"
	ThreadFilterStarred      ThreadFilter = "is_starred"
)

type GetThreadsOptions struct {
	FilterBy    ThreadFilter `json:"filter_by,omitempty"`
	NewerThanTS *int64       `json:"newer_than_ts,omitempty"`
	OlderThanTS *int64       `json:"older_than_ts,omitempty"`
	Limit       int          `json:"limit,omitempty"`
}

type AddThreadOptions struct {
	Title             string         `json:"title"`
	Content           string         `json:"content"`
	Attachments       []Attachment   `json:"attachments,omitempty"`
	Actions           []ActionButton `json:"actions,omitempty"`
	Recipients        []int64        `json:"recipients,omitempty"`
	Groups            []int64        `json:"groups,omitempty"`
	TempID            *int64         `json:"temp_id,omitempty"`
	SendAsIntegration bool           `json:"send_as_integration,omitempty"`
}

// UpdateThreadOptions holds the thread fields to change. At least one must
// be set; a set title or content must not be blank.
type UpdateThreadOptions struct {
	Title       *string        `json:"title,omitempty"`
	Content     *string        `json:"content,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	Actions     []ActionButton `json:"actions,omitempty"`
}

// MarkAllThreadsReadOptions scopes [Client.MarkAllThreadsRead] to a
// workspace or a channel. One of the two must be set.
type MarkAllThreadsReadOptions struct {
	WorkspaceID int64 `json:"workspace_id,omitempty"`
	ChannelID   int64 `json:"channel_id,omitempty"`
}

// UnreadThread is an entry of the unread list: the thread and the index of
// the last object read in it.
type UnreadThread struct {
	ThreadID  int64 `json:"thread_id"`
	ChannelID int64 `json:"channel_id"`
	ObjIndex  int   `json:"obj_index"`
	Directed  bool  `json:"directed"`
}

type objIndexPayload struct {
	ID       int64 `json:"id"`
	ObjIndex int   `json:"obj_index"`
}

func (c *Client) GetThread(ctx context.Context, threadID int64) (*Thread, error) {
	if err := requireID(threadID, "thread"); err != nil {
		return nil, err
	}

	return getResult[Thread](ctx, c, endpointGetThread, idPayload{ID: threadID})
}

func (c *Client) GetAllThreads(ctx context.Context, channelID int64, opts GetThreadsOptions) ([]Thread, error) {
	errs := []error{
		requireID(channelID, "channel"),
		requireNonNegative(opts.Limit, "limit"),
	}

	if opts.FilterBy != "" {
		errs = append(errs, requireOneOf(opts.FilterBy, "filter",
			ThreadFilterAttachedToMe, ThreadFilterEveryone, ThreadFilterStarred))
	}

	if err := firstError(errs...); err != nil {
		return nil, err
	}

	return getList[Thread](ctx, c, endpointGetAllThreads, struct {
		ChannelID int64 `json:"channel_id"`
		GetThreadsOptions
	}{channelID, opts})
}

func (c *Client) AddThread(ctx context.Context, channelID int64, opts AddThreadOptions) (*Thread, error) {
	if err := firstError(
		requireID(channelID, "channel"),
		requireText(opts.Title, "title"),
		requireText(opts.Content, "content"),
		validateAudience(opts.Recipients, opts.Groups),
	); err != nil {
		return nil, err
	}

	return postResult[Thread](ctx, c, endpointAddThread, struct {
		ChannelID int64 `json:"channel_id"`
		AddThreadOptions
	}{channelID, opts})
}

func (c *Client) UpdateThread(ctx context.Context, threadID int64, opts UpdateThreadOptions) (*Thread, error) {
	if err := firstError(
		requireID(threadID, "thread"),
		requireAny("title, content, attachments or actions",
			opts.Title != nil, opts.Content != nil, len(opts.Attachments) > 0, len(opts.Actions) > 0),
		optionalText(opts.Title, "title"),
		optionalText(opts.Content, "content"),
	); err != nil {
		return nil, err
	}

	return postResult[Thread](ctx, c, endpointUpdateThread, struct {
		ID int64 `json:"id"`
		UpdateThreadOptions
	}{threadID, opts})
}

func (c *Client) RemoveThread(ctx context.Context, threadID int64) (*Status, error) {
	return c.threadAction(ctx, endpointRemoveThread, threadID)
}

func (c *Client) StarThread(ctx context.Context, threadID int64) (*Status, error) {
	return c.threadAction(ctx, endpointStarThread, threadID)
}

func (c *Client) UnstarThread(ctx context.Context, threadID int64) (*Status, error) {
	return c.threadAction(ctx, endpointUnstarThread, threadID)
}

func (c *Client) MoveThread(ctx context.Context, threadID, toChannelID int64) (*Status, error) {
	if err := firstError(
		requireID(threadID, "thread"),
		requireID(toChannelID, "channel"),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointMoveThread, map[string]any{
		"id":         threadID,
		"to_channel": toChannelID,
	})
}

func (c *Client) GetUnreadThreads(ctx context.Context, workspaceID int64) ([]UnreadThread, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return getList[UnreadThread](ctx, c, endpointGetUnreadThreads, map[string]any{
		"workspace_id": workspaceID,
	})
}

// MarkThreadRead records objIndex as the last object read in the thread.
func (c *Client) MarkThreadRead(ctx context.Context, threadID int64, objIndex int) (*Status, error) {
	if err := requireID(threadID, "thread"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointMarkThreadRead, objIndexPayload{ID: threadID, ObjIndex: objIndex})
}

// MarkThreadUnread moves the read position back to objIndex. An index of -1
// marks the whole thread unread.
func (c *Client) MarkThreadUnread(ctx context.Context, threadID int64, objIndex int) (*Status, error) {
	if err := requireID(threadID, "thread"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointMarkThreadUnread, objIndexPayload{ID: threadID, ObjIndex: objIndex})
}

func (c *Client) MarkAllThreadsRead(ctx context.Context, opts MarkAllThreadsReadOptions) (*Status, error) {
	if err := firstError(
		idIfSet(opts.WorkspaceID, "workspace"),
		idIfSet(opts.ChannelID, "channel"),
		requireAny("workspace_id or channel_id", opts.WorkspaceID != 0, opts.ChannelID != 0),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointMarkAllThreadsRead, opts)
}

func (c *Client) ClearUnreadThreads(ctx context.Context, workspaceID int64) (*Status, error) {
	if err := requireID(workspaceID, "workspace"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointClearUnreadThreads, map[string]any{
		"workspace_id": workspaceID,
	})
}

// MuteThread silences notifications for the thread for the given number of
// minutes.
func (c *Client) MuteThread(ctx context.Context, threadID int64, minutes int) (*Thread, error) {
	if err := firstError(
		requireID(threadID, "thread"),
		requireNonNegative(minutes, "minutes"),
	); err != nil {
		return nil, err
	}

	return postResult[Thread](ctx, c, endpointMuteThread, map[string]any{
		"id":      threadID,
		"minutes": minutes,
	})
}

func (c *Client) UnmuteThread(ctx context.Context, threadID int64) (*Thread, error) {
	if err := requireID(threadID, "thread"); err != nil {
		return nil, err
	}

	return postResult[Thread](ctx, c, endpointUnmuteThread, idPayload{ID: threadID})
}

func (c *Client) threadAction(ctx context.Context, endpoint string, threadID int64) (*Status, error) {
	if err := requireID(threadID, "thread"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpoint, idPayload{ID: threadID})
}

// validateAudience checks the recipient user ids and group ids of a new
// thread or comment.
func validateAudience(recipients, groups []int64) error {
	for _, id := range recipients {
		if err := requireID(id, "recipient"); err != nil {
			return err
		}
	}

	for _, id := range groups {
		if err := requireID(id, "group"); err != nil {
			return err
		}
	}

	return nil
}
