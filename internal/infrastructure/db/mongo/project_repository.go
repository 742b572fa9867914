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

const projectsCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	ProjectName         string             `bson:"project_name"`
	Description         string             `bson:"description"`
	AssignedFreelancers []string           `bson:"assigned_freelancers"`
	Status              string             `bson:"status"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func (mp mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:                  mp.ID.Hex(),
		ProjectName:         mp.ProjectName,
		Description:         mp.Description,
		AssignedFreelancers: mp.AssignedFreelancers,
		Status:              domain.ProjectStatus(mp.Status),
		CreatedAt:           mp.CreatedAt.UTC(),
		UpdatedAt:           mp.UpdatedAt.UTC(),
	}
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	now := time.Now().UTC()
	doc := mongoProject{
		ProjectName:         project.ProjectName,
		Description:         project.Description,
		AssignedFreelancers: []string{},
		Status:              string(project.Status),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Project
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, *mp.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoProjectRepository) AppendFreelancers(ctx context.Context, projectID string, freelancerIDs []string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"assigned_freelancers": bson.M{"$each": freelancerIDs}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("assign freelancers: %w", err)
	}
	return mp.toDomain(), nil
}
