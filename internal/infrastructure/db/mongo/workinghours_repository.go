package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

const workingHoursCollection = "working_hours"

type MongoWorkingHoursRepository struct {
	coll *mongo.Collection
}

func NewWorkingHoursRepository(db *mongo.Database) *MongoWorkingHoursRepository {
	return &MongoWorkingHoursRepository{coll: db.Collection(workingHoursCollection)}
}

type mongoWorkEntry struct {
	Date        time.Time `bson:"date"`
	Hours       float64   `bson:"hours"`
	Description string    `bson:"description"`
}

type mongoWorkingHours struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FreelancerID   string             `bson:"freelancer_id"`
	ProjectID      string             `bson:"project_id"`
	WorkEntries    []mongoWorkEntry   `bson:"work_entries"`
	HourlyRate     float64            `bson:"hourly_rate"`
	TotalHours     float64            `bson:"total_hours"`
	TotalAmount    float64            `bson:"total_amount"`
	ApprovalStatus string             `bson:"approval_status"`
	ApprovedBy     string             `bson:"approved_by,omitempty"`
	Comments       []string           `bson:"comments"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (mw mongoWorkingHours) toDomain() *domain.WorkingHours {
	entries := make([]domain.WorkEntry, 0, len(mw.WorkEntries))
	for _, e := range mw.WorkEntries {
		entries = append(entries, domain.WorkEntry{
			Date:        e.Date.UTC(),
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return &domain.WorkingHours{
		ID:             mw.ID.Hex(),
		FreelancerID:   mw.FreelancerID,
		ProjectID:      mw.ProjectID,
		WorkEntries:    entries,
		HourlyRate:     mw.HourlyRate,
		TotalHours:     mw.TotalHours,
		TotalAmount:    mw.TotalAmount,
		ApprovalStatus: domain.ApprovalStatus(mw.ApprovalStatus),
		ApprovedBy:     mw.ApprovedBy,
		Comments:       mw.Comments,
		CreatedAt:      mw.CreatedAt.UTC(),
		UpdatedAt:      mw.UpdatedAt.UTC(),
	}
}

func (r *MongoWorkingHoursRepository) Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	now := time.Now().UTC()
	entries := make([]mongoWorkEntry, 0, len(wh.WorkEntries))
	for _, e := range wh.WorkEntries {
		entries = append(entries, mongoWorkEntry{Date: e.Date.UTC(), Hours: e.Hours, Description: e.Description})
	}
	doc := mongoWorkingHours{
		FreelancerID:   wh.FreelancerID,
		ProjectID:      wh.ProjectID,
		WorkEntries:    entries,
		HourlyRate:     wh.HourlyRate,
		TotalHours:     wh.TotalHours,
		TotalAmount:    wh.TotalAmount,
		ApprovalStatus: string(wh.ApprovalStatus),
		Comments:       []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert working hours: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoWorkingHoursRepository) FindByID(ctx context.Context, id string) (*domain.WorkingHours, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkingHoursNotFound
	}

	var mw mongoWorkingHours
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkingHoursNotFound
		}
		return nil, fmt.Errorf("find working hours: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *MongoWorkingHoursRepository) ListByStatus(ctx context.Context, status domain.ApprovalStatus) ([]domain.WorkingHours, error) {
	return r.list(ctx, bson.M{"approval_status": string(status)})
}

func (r *MongoWorkingHoursRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]domain.WorkingHours, error) {
	return r.list(ctx, bson.M{"freelancer_id": freelancerID})
}

func (r *MongoWorkingHoursRepository) list(ctx context.Context, filter bson.M) ([]domain.WorkingHours, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.WorkingHours
	for cur.Next(ctx) {
		var mw mongoWorkingHours
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode working hours: %w", err)
		}
		out = append(out, *mw.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoWorkingHoursRepository) SetApproval(ctx context.Context, id string, status domain.ApprovalStatus, approvedBy string) (*domain.WorkingHours, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkingHoursNotFound
	}

	var mw mongoWorkingHours
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"approval_status": string(status),
			"approved_by":     approvedBy,
			"updated_at":      time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkingHoursNotFound
		}
		return nil, fmt.Errorf("set approval: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *MongoWorkingHoursRepository) AppendComment(ctx context.Context, id, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWorkingHoursNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkingHoursNotFound
	}
	return nil
}
