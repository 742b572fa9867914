package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// CommunicationService implements the comment thread on working-hours
// entries: comments, replies to comments, and comments on replies.
type CommunicationService struct {
	comms  ports.CommunicationRepository
	hours  ports.WorkingHoursRepository
	logger zerolog.Logger
}

func NewCommunicationService(comms ports.CommunicationRepository, hours ports.WorkingHoursRepository, logger zerolog.Logger) *CommunicationService {
	return &CommunicationService{comms: comms, hours: hours, logger: logger}
}

// CreateComment attaches a comment to a working-hours entry. The entry must
// exist; the repository appends the comment id to it.
func (s *CommunicationService) CreateComment(ctx context.Context, userID, workingHoursID, text string) (*domain.Comment, error) {
	if _, err := s.hours.FindByID(ctx, workingHoursID); err != nil {
		return nil, err
	}

	created, err := s.comms.CreateComment(ctx, &domain.Comment{
		Comment:        text,
		UserID:         userID,
		WorkingHoursID: workingHoursID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.hours.AppendComment(ctx, workingHoursID, created.ID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("comment_id", created.ID).Str("working_hours_id", workingHoursID).Msg("comment created")
	return created, nil
}

// CreateReply answers an existing comment.
func (s *CommunicationService) CreateReply(ctx context.Context, userID, commentID, text string) (*domain.Reply, error) {
	if _, err := s.comms.FindCommentByID(ctx, commentID); err != nil {
		return nil, err
	}

	created, err := s.comms.CreateReply(ctx, &domain.Reply{
		Reply:     text,
		UserID:    userID,
		CommentID: commentID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("reply_id", created.ID).Str("comment_id", commentID).Msg("reply created")
	return created, nil
}

// ReplyToReply adds the third thread level: a comment on a reply.
func (s *CommunicationService) ReplyToReply(ctx context.Context, userID, replyID, text string) (*domain.ReplyComment, error) {
	if _, err := s.comms.FindReplyByID(ctx, replyID); err != nil {
		return nil, err
	}

	created, err := s.comms.CreateReplyComment(ctx, &domain.ReplyComment{
		Comment: text,
		UserID:  userID,
		ReplyID: replyID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("reply_comment_id", created.ID).Str("reply_id", replyID).Msg("reply comment created")
	return created, nil
}
