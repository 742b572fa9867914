package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

const (
	commentsCollection      = "comments"
	repliesCollection       = "replies"
	replyCommentsCollection = "reply_comments"
)

type MongoCommunicationRepository struct {
	comments *mongo.Collection
	replies  *mongo.Collection
	rcs      *mongo.Collection
}

func NewCommunicationRepository(db *mongo.Database) *MongoCommunicationRepository {
	return &MongoCommunicationRepository{
		comments: db.Collection(commentsCollection),
		replies:  db.Collection(repliesCollection),
		rcs:      db.Collection(replyCommentsCollection),
	}
}

type mongoComment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Comment        string             `bson:"comment"`
	UserID         string             `bson:"user_id"`
	WorkingHoursID string             `bson:"workinghours_entry_id"`
	Replies        []string           `bson:"replies"`
	CreatedAt      time.Time          `bson:"created_at"`
}

type mongoReply struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Reply     string             `bson:"reply"`
	UserID    string             `bson:"user_id"`
	CommentID string             `bson:"comment_id"`
	Replies   []string           `bson:"replies"`
	CreatedAt time.Time          `bson:"created_at"`
}

type mongoReplyComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Comment   string             `bson:"comment"`
	UserID    string             `bson:"user_id"`
	ReplyID   string             `bson:"reply_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *MongoCommunicationRepository) CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	doc := mongoComment{
		Comment:        c.Comment,
		UserID:         c.UserID,
		WorkingHoursID: c.WorkingHoursID,
		Replies:        []string{},
		CreatedAt:      time.Now().UTC(),
	}

	res, err := r.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)

	return &domain.Comment{
		ID:             doc.ID.Hex(),
		Comment:        doc.Comment,
		UserID:         doc.UserID,
		WorkingHoursID: doc.WorkingHoursID,
		Replies:        doc.Replies,
		CreatedAt:      doc.CreatedAt,
	}, nil
}

func (r *MongoCommunicationRepository) FindCommentByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var mc mongoComment
	if err := r.comments.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &domain.Comment{
		ID:             mc.ID.Hex(),
		Comment:        mc.Comment,
		UserID:         mc.UserID,
		WorkingHoursID: mc.WorkingHoursID,
		Replies:        mc.Replies,
		CreatedAt:      mc.CreatedAt.UTC(),
	}, nil
}

func (r *MongoCommunicationRepository) CreateReply(ctx context.Context, reply *domain.Reply) (*domain.Reply, error) {
	commentOID, err := primitive.ObjectIDFromHex(reply.CommentID)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	doc := mongoReply{
		Reply:     reply.Reply,
		UserID:    reply.UserID,
		CommentID: reply.CommentID,
		Replies:   []string{},
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.replies.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reply: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)

	upd, err := r.comments.UpdateOne(ctx,
		bson.M{"_id": commentOID},
		bson.M{"$push": bson.M{"replies": doc.ID.Hex()}},
	)
	if err != nil {
		return nil, fmt.Errorf("link reply to comment: %w", err)
	}
	if upd.MatchedCount == 0 {
		return nil, domain.ErrCommentNotFound
	}

	return &domain.Reply{
		ID:        doc.ID.Hex(),
		Reply:     doc.Reply,
		UserID:    doc.UserID,
		CommentID: doc.CommentID,
		Replies:   doc.Replies,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *MongoCommunicationRepository) FindReplyByID(ctx context.Context, id string) (*domain.Reply, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReplyNotFound
	}

	var mr mongoReply
	if err := r.replies.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReplyNotFound
		}
		return nil, fmt.Errorf("find reply: %w", err)
	}
	return &domain.Reply{
		ID:        mr.ID.Hex(),
		Reply:     mr.Reply,
		UserID:    mr.UserID,
		CommentID: mr.CommentID,
		Replies:   mr.Replies,
		CreatedAt: mr.CreatedAt.UTC(),
	}, nil
}

func (r *MongoCommunicationRepository) CreateReplyComment(ctx context.Context, rc *domain.ReplyComment) (*domain.ReplyComment, error) {
	replyOID, err := primitive.ObjectIDFromHex(rc.ReplyID)
	if err != nil {
		return nil, domain.ErrReplyNotFound
	}

	doc := mongoReplyComment{
		Comment:   rc.Comment,
		UserID:    rc.UserID,
		ReplyID:   rc.ReplyID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.rcs.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reply comment: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)

	upd, err := r.replies.UpdateOne(ctx,
		bson.M{"_id": replyOID},
		bson.M{"$push": bson.M{"replies": doc.ID.Hex()}},
	)
	if err != nil {
		return nil, fmt.Errorf("link reply comment to reply: %w", err)
	}
	if upd.MatchedCount == 0 {
		return nil, domain.ErrReplyNotFound
	}

	return &domain.ReplyComment{
		ID:        doc.ID.Hex(),
		Comment:   doc.Comment,
		UserID:    doc.UserID,
		ReplyID:   doc.ReplyID,
		CreatedAt: doc.CreatedAt,
	}, nil
}
