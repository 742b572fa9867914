package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

func newCommFixture(t *testing.T) (*CommunicationService, *stubCommunicationRepo, *stubWorkingHoursRepo) {
	t.Helper()
	comms := newStubCommunicationRepo()
	hours := newStubWorkingHoursRepo()
	return NewCommunicationService(comms, hours, zerolog.Nop()), comms, hours
}

func seedSheet(t *testing.T, hours *stubWorkingHoursRepo) string {
	t.Helper()
	wh, err := hours.Create(context.Background(), &domain.WorkingHours{
		FreelancerID: "user-1",
		ProjectID:    "project-1",
		WorkEntries:  []domain.WorkEntry{{Date: time.Now(), Hours: 2, Description: "x"}},
	})
	if err != nil {
		t.Fatalf("seed sheet: %v", err)
	}
	return wh.ID
}

func TestCommunicationService_ThreadFlow(t *testing.T) {
	svc, comms, hours := newCommFixture(t)
	ctx := context.Background()
	sheetID := seedSheet(t, hours)

	comment, err := svc.CreateComment(ctx, "user-2", sheetID, "please split this entry")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.WorkingHoursID != sheetID {
		t.Fatalf("comment not linked to sheet")
	}
	sheet, _ := hours.FindByID(ctx, sheetID)
	if len(sheet.Comments) != 1 || sheet.Comments[0] != comment.ID {
		t.Fatalf("comment id not appended to sheet: %+v", sheet.Comments)
	}

	reply, err := svc.CreateReply(ctx, "user-1", comment.ID, "done, see update")
	if err != nil {
		t.Fatalf("CreateReply: %v", err)
	}
	parent, _ := comms.FindCommentByID(ctx, comment.ID)
	if len(parent.Replies) != 1 || parent.Replies[0] != reply.ID {
		t.Fatalf("reply id not appended to comment: %+v", parent)
	}

	rc, err := svc.ReplyToReply(ctx, "user-2", reply.ID, "thanks")
	if err != nil {
		t.Fatalf("ReplyToReply: %v", err)
	}
	parentReply, _ := comms.FindReplyByID(ctx, reply.ID)
	if len(parentReply.Replies) != 1 || parentReply.Replies[0] != rc.ID {
		t.Fatalf("reply comment id not appended to reply: %+v", parentReply)
	}
}

func TestCommunicationService_MissingParents(t *testing.T) {
	svc, _, hours := newCommFixture(t)
	ctx := context.Background()
	sheetID := seedSheet(t, hours)

	if _, err := svc.CreateComment(ctx, "u", "missing-sheet", "hi"); !errors.Is(err, domain.ErrWorkingHoursNotFound) {
		t.Fatalf("expected ErrWorkingHoursNotFound, got %v", err)
	}
	if _, err := svc.CreateReply(ctx, "u", "missing-comment", "hi"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if _, err := svc.ReplyToReply(ctx, "u", "missing-reply", "hi"); !errors.Is(err, domain.ErrReplyNotFound) {
		t.Fatalf("expected ErrReplyNotFound, got %v", err)
	}

	// No orphaned children may exist after the failures.
	comment, err := svc.CreateComment(ctx, "u", sheetID, "ok")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.ID == "" {
		t.Fatalf("missing id")
	}
}
