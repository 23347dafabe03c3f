package links

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	qrmongo "github.com/dmitrymomot/qrkit/pkg/mongo"
)

const mongoCollection = "links"

// MongoRepository stores links in the links collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(mongoCollection)}
}

// EnsureIndexes creates the unique index on code.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("code_unique"),
	})
	if err != nil {
		return fmt.Errorf("create links index: %w", err)
	}
	return nil
}

// mongoLink mirrors Link with the UUID stored as a string.
type mongoLink struct {
	ID          string        `bson:"_id"`
	Code        string        `bson:"code"`
	Destination string        `bson:"destination"`
	Visits      int64         `bson:"visits"`
	CreatedAt   bson.DateTime `bson:"created_at"`
}

func (r *MongoRepository) Insert(ctx context.Context, link Link) error {
	_, err := r.coll.InsertOne(ctx, mongoLink{
		ID:          link.ID.String(),
		Code:        link.Code,
		Destination: link.Destination,
		Visits:      link.Visits,
		CreatedAt:   bson.NewDateTimeFromTime(link.CreatedAt),
	})
	if qrmongo.IsDuplicateKeyError(err) {
		return ErrCodeTaken
	}
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByCode(ctx context.Context, code string) (Link, error) {
	var doc mongoLink
	err := r.coll.FindOne(ctx, bson.D{{Key: "code", Value: code}}).Decode(&doc)
	if qrmongo.IsNotFoundError(err) {
		return Link{}, ErrNotFound
	}
	if err != nil {
		return Link{}, fmt.Errorf("find link: %w", err)
	}
	return doc.link()
}

func (r *MongoRepository) IncrementVisits(ctx context.Context, code string) (int64, error) {
	var doc mongoLink
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "code", Value: code}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "visits", Value: 1}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if qrmongo.IsNotFoundError(err) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment visits: %w", err)
	}
	return doc.Visits, nil
}

func (d mongoLink) link() (Link, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Link{}, fmt.Errorf("corrupt link %q: %w", d.Code, err)
	}
	return Link{
		ID:          id,
		Code:        d.Code,
		Destination: d.Destination,
		Visits:      d.Visits,
		CreatedAt:   d.CreatedAt.Time().UTC(),
	}, nil
}
