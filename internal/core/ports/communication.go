package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// CommunicationRepository persists the comment/reply/reply-comment thread.
// CreateReply and CreateReplyComment also append the new child id to its
// parent's reply list; linking a comment to its working-hours entry is the
// service's job via WorkingHoursRepository.AppendComment.
type CommunicationRepository interface {
	CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindCommentByID(ctx context.Context, id string) (*domain.Comment, error)
	CreateReply(ctx context.Context, r *domain.Reply) (*domain.Reply, error)
	FindReplyByID(ctx context.Context, id string) (*domain.Reply, error)
	CreateReplyComment(ctx context.Context, rc *domain.ReplyComment) (*domain.ReplyComment, error)
}

type CommunicationService interface {
	CreateComment(ctx context.Context, userID, workingHoursID, text string) (*domain.Comment, error)
	CreateReply(ctx context.Context, userID, commentID, text string) (*domain.Reply, error)
	ReplyToReply(ctx context.Context, userID, replyID, text string) (*domain.ReplyComment, error)
}
