package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mazeDocument is the BSON shape of a maze record.
type mazeDocument struct {
	ID         string    `bson:"_id"`
	Size       int       `bson:"size"`
	Seed       int64     `bson:"seed"`
	PathLength int       `bson:"pathLength"`
	CreatedAt  time.Time `bson:"createdAt"`
}

func toDocument(r *dmn.MazeRecord) mazeDocument {
	return mazeDocument{
		ID:         r.ID.String(),
		Size:       r.Size,
		Seed:       r.Seed,
		PathLength: r.PathLength,
		CreatedAt:  r.CreatedAt,
	}
}

func (d mazeDocument) toRecord() (*dmn.MazeRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.New("corrupt maze id: " + err.Error())
	}
	return &dmn.MazeRecord{
		ID:         id,
		Size:       d.Size,
		Seed:       d.Seed,
		PathLength: d.PathLength,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
		timeout:    2 * time.Second,
	}
}

// Save inserts or updates a maze record.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toDocument(record)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"size":       doc.Size,
			"seed":       doc.Seed,
			"pathLength": doc.PathLength,
			"createdAt":  doc.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns dmn.ErrMazeNotFound if no record matches.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": id.String()}
	var doc mazeDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return doc.toRecord()
}
