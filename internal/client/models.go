package client

import (
	"fmt"
	"time"
)

// TimelineKind selects which server timeline to fetch
type TimelineKind int

const (
	// TimelineHome is the posts of followed accounts
	TimelineHome TimelineKind = iota
	// TimelineLocal is public posts originating on this server
	TimelineLocal
	// TimelinePublic is the federated firehose
	TimelinePublic
)

// String returns the API name for the timeline
func (t TimelineKind) String() string {
	switch t {
	case TimelineHome:
		return "home"
	case TimelineLocal:
		return "local"
	case TimelinePublic:
		return "public"
	default:
		return fmt.Sprintf("TimelineKind(%d)", int(t))
	}
}

// Visibility is the audience of a created post
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityUnlisted
	VisibilityPrivate
	VisibilityDirect
)

// String returns the API name for the visibility
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityUnlisted:
		return "unlisted"
	case VisibilityPrivate:
		return "private"
	case VisibilityDirect:
		return "direct"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// VisibilityFromString parses an API visibility name, defaulting to public
// for anything unrecognized
func VisibilityFromString(s string) Visibility {
	switch s {
	case "unlisted":
		return VisibilityUnlisted
	case "private":
		return VisibilityPrivate
	case "direct":
		return VisibilityDirect
	default:
		return VisibilityPublic
	}
}

// Account is the subset of account fields the screens render.
// Incomplete on purpose, the API returns far more
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
}

// MediaAttachment describes one piece of attached media
type MediaAttachment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Status is one post as returned by the API.
// Incomplete on purpose, the API returns far more
type Status struct {
	ID               string            `json:"id"`
	InReplyToID      string            `json:"in_reply_to_id"`
	URI              string            `json:"uri"`
	URL              string            `json:"url"`
	Account          Account           `json:"account"`
	Reblog           *Status           `json:"reblog"`
	Content          string            `json:"content"`
	SpoilerText      string            `json:"spoiler_text"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
	CreatedAt        time.Time         `json:"created_at"`
	RepliesCount     int               `json:"replies_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	FavouritesCount  int               `json:"favourites_count"`
	Favourited       bool              `json:"favourited"`
	Reblogged        bool              `json:"reblogged"`
	Muted            bool              `json:"muted"`
	Bookmarked       bool              `json:"bookmarked"`
}

// Preferences are the server-side user preferences that seed the composer
// and the spoiler default
type Preferences struct {
	DefaultLanguage   string `json:"posting:default:language"`
	DefaultSensitive  bool   `json:"posting:default:sensitive"`
	DefaultVisibility string `json:"posting:default:visibility"`
	AutoplayGifs      bool   `json:"reading:autoplay:gifs"`
	ExpandMedia       string `json:"reading:expand:media"`
	ExpandSpoilers    bool   `json:"reading:expand:spoilers"`
}

// statusContext is the wire shape of the context endpoint
type statusContext struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`
}
