package twist

import "encoding/json"

// Timestamps are unix seconds throughout.

type AvatarURLs struct {
	S35  string `json:"s35"`
	S60  string `json:"s60"`
	S195 string `json:"s195"`
	S640 string `json:"s640"`
}

type AwayType string

const (
	AwayParental  AwayType = "parental"
	AwayVacation  AwayType = "vacation"
	AwaySickLeave AwayType = "sickleave"
	AwayOther     AwayType = "other"
)

// AwayMode describes an away period. Dates use the YYYY-MM-DD form.
type AwayMode struct {
	Type     AwayType `json:"type"`
	DateFrom string   `json:"date_from,omitempty"`
	DateTo   string   `json:"date_to,omitempty"`
}

type Email struct {
	Email     string  `json:"email"`
	Primary   bool    `json:"primary"`
	Connected []int64 `json:"connected"`
}

type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	ShortName        string     `json:"short_name"`
	FirstName        string     `json:"first_name"`
	Email            string     `json:"email"`
	Emails           []Email    `json:"emails"`
	ClientID         string     `json:"client_id"`
	Token            string     `json:"token"`
	Bot              bool       `json:"bot"`
	Removed          bool       `json:"removed"`
	Restricted       bool       `json:"restricted"`
	SetupPending     bool       `json:"setup_pending"`
	DoistEmployee    bool       `json:"doist_employee"`
	Profession       string     `json:"profession"`
	ContactInfo      string     `json:"contact_info"`
	Timezone         string     `json:"timezone"`
	Lang             string     `json:"lang"`
	Theme            string     `json:"theme"`
	TimeFormat       string     `json:"time_format"`
	DateFormat       string     `json:"date_format"`
	AvatarID         string     `json:"avatar_id"`
	OriginalAvatarID string     `json:"original_avatar_id"`
	AvatarURLs       AvatarURLs `json:"avatar_urls"`
	AwayMode         *AwayMode  `json:"away_mode"`
	OffDays          []int      `json:"off_days"`
	DefaultWorkspace int64      `json:"default_workspace"`
	CometChannel     string     `json:"comet_channel"`
	CometServer      string     `json:"comet_server"`
	FeatureFlags     []string   `json:"feature_flags"`
	ScheduledBanners []string   `json:"scheduled_banners"`
	Snoozed          bool       `json:"snoozed"`
	SnoozeUntil      *int64     `json:"snooze_until"`
	SnoozeDNDStart   string     `json:"snooze_dnd_start"`
	SnoozeDNDEnd     string     `json:"snooze_dnd_end"`
	Version          int64      `json:"version"`
}

type Workspace struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Color               int    `json:"color"`
	Creator             int64  `json:"creator"`
	DefaultChannel      int64  `json:"default_channel"`
	DefaultConversation int64  `json:"default_conversation"`
	Plan                string `json:"plan"`
	CreatedTS           int64  `json:"created_ts"`
	Version             int64  `json:"version"`
}

type Channel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Creator     int64   `json:"creator"`
	UserIDs     []int64 `json:"user_ids,omitempty"`
	Color       int     `json:"color"`
	Public      bool    `json:"public"`
	WorkspaceID int64   `json:"workspace_id"`
	Archived    bool    `json:"archived"`
	CreatedTS   int64   `json:"created_ts"`
}

type Group struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	UserIDs     []int64 `json:"user_ids"`
	WorkspaceID int64   `json:"workspace_id"`
}

// Reactions maps an emoji to the ids of the users who reacted with it.
type Reactions map[string][]int64

type Attachment struct {
	AttachmentID   string `json:"attachment_id"`
	Title          string `json:"title,omitempty"`
	URL            string `json:"url"`
	URLType        string `json:"url_type,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	FileSize       int64  `json:"file_size,omitempty"`
	UnderlyingType string `json:"underlying_type,omitempty"`
	Image          string `json:"image,omitempty"`
	ImageHeight    int    `json:"image_height,omitempty"`
	ImageWidth     int    `json:"image_width,omitempty"`
	UploadState    string `json:"upload_state,omitempty"`
}

type ActionButton struct {
	Action     string `json:"action"`
	Type       string `json:"type"`
	ButtonText string `json:"button_text"`
	URL        string `json:"url,omitempty"`
	Message    string `json:"message,omitempty"`
}

type SystemMessage struct {
	Type          string          `json:"type"`
	Initiator     int64           `json:"initiator"`
	InitiatorID   int64           `json:"initiator_id"`
	InitiatorName string          `json:"initiator_name"`
	ChannelID     int64           `json:"channel_id"`
	ThreadID      int64           `json:"thread_id"`
	CommentID     int64           `json:"comment_id"`
	IsIntegration json.RawMessage `json:"is_integration,omitempty"`
}

type Thread struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Starred        bool           `json:"starred"`
	Creator        int64          `json:"creator"`
	ChannelID      int64          `json:"channel_id"`
	WorkspaceID    int64          `json:"workspace_id"`
	Attachments    []Attachment   `json:"attachments,omitempty"`
	Actions        []ActionButton `json:"actions"`
	Recipients     []int64        `json:"recipients"`
	Participants   []int64        `json:"participants"`
	Groups         []int64        `json:"groups"`
	Reactions      Reactions      `json:"reactions"`
	CommentCount   int            `json:"comment_count"`
	LastObjIndex   int            `json:"last_obj_index"`
	Snippet        string         `json:"snippet"`
	SnippetCreator int64          `json:"snippet_creator"`
	LastUpdatedTS  int64          `json:"last_updated_ts"`
	MutedUntil     *int64         `json:"muted_until,omitempty"`
	SystemMessage  *SystemMessage `json:"system_message,omitempty"`
	PostedTS       int64          `json:"posted_ts"`
	LastEditedTS   int64          `json:"last_edited_ts"`
}

type Comment struct {
	ID            int64          `json:"id"`
	Content       string         `json:"content"`
	Creator       int64          `json:"creator"`
	ThreadID      int64          `json:"thread_id"`
	ChannelID     int64          `json:"channel_id"`
	WorkspaceID   int64          `json:"workspace_id"`
	ObjIndex      int            `json:"obj_index"`
	Attachments   []Attachment   `json:"attachments,omitempty"`
	Recipients    []int64        `json:"recipients"`
	Groups        []int64        `json:"groups"`
	Reactions     Reactions      `json:"reactions"`
	IsDeleted     bool           `json:"is_deleted"`
	SystemMessage *SystemMessage `json:"system_message,omitempty"`
	PostedTS      int64          `json:"posted_ts"`
	LastEditedTS  int64          `json:"last_edited_ts"`
}

type ConversationMessage struct {
	ID             int64             `json:"id"`
	ConversationID int64             `json:"conversation_id"`
	WorkspaceID    int64             `json:"workspace_id"`
	Creator        int64             `json:"creator"`
	Content        string            `json:"content"`
	Deleted        bool              `json:"deleted"`
	Actions        []ActionButton    `json:"actions"`
	Attachments    []Attachment      `json:"attachments"`
	Reactions      Reactions         `json:"reactions"`
	DirectMentions []json.RawMessage `json:"direct_mentions"`
	SystemMessage  *SystemMessage    `json:"system_message,omitempty"`
	ObjIndex       int               `json:"obj_index"`
	PostedTS       int64             `json:"posted_ts"`
	LastEditedTS   *int64            `json:"last_edited_ts,omitempty"`
}

type Conversation struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title,omitempty"`
	Private         bool                `json:"private"`
	Creator         int64               `json:"creator"`
	WorkspaceID     int64               `json:"workspace_id"`
	UserIDs         []int64             `json:"user_ids"`
	LastMessage     ConversationMessage `json:"last_message"`
	MessageCount    int                 `json:"message_count"`
	LastObjIndex    int                 `json:"last_obj_index"`
	Snippet         string              `json:"snippet"`
	SnippetCreators []int64             `json:"snippet_creators"`
	LastActiveTS    int64               `json:"last_active_ts"`
	MutedUntilTS    *int64              `json:"muted_until_ts,omitempty"`
	Archived        bool                `json:"archived"`
	CreatedTS       int64               `json:"created_ts"`
}

type GoogleConnection struct {
	GoogleConnection bool   `json:"google_connection"`
	GoogleEmail      string `json:"google_email"`
}

// Status is the acknowledgement returned by mutating endpoints that have no
// richer result, typically {"status": "ok"}.
type Status struct {
	Status string `json:"status"`
}
