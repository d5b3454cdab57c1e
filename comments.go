package twist

import (
	"context"
)

type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

type GetCommentsOptions struct {
	NewerThanTS  *int64    `json:"newer_than_ts,omitempty"`
	OlderThanTS  *int64    `json:"older_than_ts,omitempty"`
	FromObjIndex *int      `json:"from_obj_index,omitempty"`
	ToObjIndex   *int      `json:"to_obj_index,omitempty"`
	Limit        int       `json:"limit,omitempty"`
	OrderBy      SortOrder `json:"order_by,omitempty"`
}

type AddCommentOptions struct {
	Content            string         `json:"content"`
	Attachments        []Attachment   `json:"attachments,omitempty"`
	Actions            []ActionButton `json:"actions,omitempty"`
	Recipients         []int64        `json:"recipients,omitempty"`
	Groups             []int64        `json:"groups,omitempty"`
	TempID             *int64         `json:"temp_id,omitempty"`
	MarkThreadPosition *bool          `json:"mark_thread_position,omitempty"`
	SendAsIntegration  bool           `json:"send_as_integration,omitempty"`
}

type UpdateCommentOptions struct {
	Content     *string        `json:"content,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	Actions     []ActionButton `json:"actions,omitempty"`
}

func (c *Client) GetComment(ctx context.Context, commentID int64) (*Comment, error) {
	if err := requireID(commentID, "comment"); err != nil {
		return nil, err
	}

	return getResult[Comment](ctx, c, endpointGetComment, idPayload{ID: commentID})
}

func (c *Client) GetAllComments(ctx context.Context, threadID int64, opts GetCommentsOptions) ([]Comment, error) {
	errs := []error{
		requireID(threadID, "thread"),
		requireNonNegative(opts.Limit, "limit"),
	}

	if opts.OrderBy != "" {
		errs = append(errs, requireOneOf(opts.OrderBy, "order", SortAscending, SortDescending))
	}

	if err := firstError(errs...); err != nil {
		return nil, err
	}

	return getList[Comment](ctx, c, endpointGetAllComments, struct {
		ThreadID int64 `json:"thread_id"`
		GetCommentsOptions
	}{threadID, opts})
}

func (c *Client) AddComment(ctx context.Context, threadID int64, opts AddCommentOptions) (*Comment, error) {
	if err := firstError(
		requireID(threadID, "thread"),
		requireText(opts.Content, "content"),
		validateAudience(opts.Recipients, opts.Groups),
	); err != nil {
		return nil, err
	}

	return postResult[Comment](ctx, c, endpointAddComment, struct {
		ThreadID int64 `json:"thread_id"`
		AddCommentOptions
	}{threadID, opts})
}

func (c *Client) UpdateComment(ctx context.Context, commentID int64, opts UpdateCommentOptions) (*Comment, error) {
	if err := firstError(
		requireID(commentID, "comment"),
		requireAny("content, attachments or actions",
			opts.Content != nil, len(opts.Attachments) > 0, len(opts.Actions) > 0),
		optionalText(opts.Content, "content"),
	); err != nil {
		return nil, err
	}

	return postResult[Comment](ctx, c, endpointUpdateComment, struct {
		ID int64 `json:"id"`
		UpdateCommentOptions
	}{commentID, opts})
}

func (c *Client) RemoveComment(ctx context.Context, commentID int64) (*Status, error) {
	if err := requireID(commentID, "comment"); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointRemoveComment, idPayload{ID: commentID})
}

// MarkCommentPosition sets the session user's read position in a thread to
// the given comment.
func (c *Client) MarkCommentPosition(ctx context.Context, threadID, commentID int64) (*Status, error) {
	if err := firstError(
		requireID(threadID, "thread"),
		requireID(commentID, "comment"),
	); err != nil {
		return nil, err
	}

	return postResult[Status](ctx, c, endpointMarkCommentPosition, map[string]any{
		"thread_id":  threadID,
		"comment_id": commentID,
	})
}
