package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")
var ErrReplyNotFound = errors.New("reply not found")

// Comment is attached to a working-hours entry.
type Comment struct {
	ID             string    `json:"id"`
	Comment        string    `json:"comment"`
	UserID         string    `json:"user_id"`
	WorkingHoursID string    `json:"workinghours_entry_id"`
	Replies        []string  `json:"replies"`
	CreatedAt      time.Time `json:"created_at"`
}

// Reply answers a comment. Replies holds the ids of reply-comments made on
// this reply.
type Reply struct {
	ID        string    `json:"id"`
	Reply     string    `json:"reply"`
	UserID    string    `json:"user_id"`
	CommentID string    `json:"comment_id"`
	Replies   []string  `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplyComment is the third level of the thread: a comment on a reply.
type ReplyComment struct {
	ID        string    `json:"id"`
	Comment   string    `json:"comment"`
	UserID    string    `json:"user_id"`
	ReplyID   string    `json:"reply_id"`
	CreatedAt time.Time `json:"created_at"`
}
