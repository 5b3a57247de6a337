package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tieubaoca/paperdesk-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PaperRepo interface {
	// Insert assigns the id and created_at server-side and returns the
	// stored record.
	Insert(ctx context.Context, paper *types.Paper) (*types.Paper, error)
	// ListByUser returns papers ordered newest first; an empty slice is
	// not an error.
	ListByUser(ctx context.Context, userID string) ([]*types.Paper, error)
	GetByID(ctx context.Context, id, userID string) (*types.Paper, error)
	// FindByTitle is an explicitly multi-result query: titles are not
	// unique within a user's collection.
	FindByTitle(ctx context.Context, title, userID string) ([]*types.Paper, error)
	// DeleteByID is a single conditional delete; a zero delete count
	// reports NotFoundError without a separate existence probe.
	DeleteByID(ctx context.Context, id, userID string) error
}

type paperRepo struct {
	collection *mongo.Collection
}

func NewPaperRepo(collection *mongo.Collection) PaperRepo {
	return &paperRepo{
		collection: collection,
	}
}

func (r *paperRepo) Insert(ctx context.Context, paper *types.Paper) (*types.Paper, error) {
	paper.ID = bson.NewObjectID().Hex()
	paper.CreatedAt = time.Now().Unix()
	if _, err := r.collection.InsertOne(ctx, paper); err != nil {
		return nil, &types.PersistenceError{Op: "insert paper", Err: err}
	}
	return paper, nil
}

func (r *paperRepo) ListByUser(ctx context.Context, userID string) ([]*types.Paper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, &types.PersistenceError{Op: "list papers", Err: err}
	}
	defer cursor.Close(ctx)

	papers := make([]*types.Paper, 0)
	for cursor.Next(ctx) {
		var paper types.Paper
		if err := cursor.Decode(&paper); err != nil {
			return nil, &types.PersistenceError{Op: "decode paper", Err: err}
		}
		papers = append(papers, &paper)
	}
	if err := cursor.Err(); err != nil {
		return nil, &types.PersistenceError{Op: "list papers", Err: err}
	}
	return papers, nil
}

func (r *paperRepo) GetByID(ctx context.Context, id, userID string) (*types.Paper, error) {
	var paper types.Paper
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&paper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &types.NotFoundError{Resource: "paper", Key: id}
	}
	if err != nil {
		return nil, &types.PersistenceError{Op: "get paper", Err: err}
	}
	return &paper, nil
}

func (r *paperRepo) FindByTitle(ctx context.Context, title, userID string) ([]*types.Paper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"title": title, "user_id": userID}, opts)
	if err != nil {
		return nil, &types.PersistenceError{Op: "find papers by title", Err: err}
	}
	defer cursor.Close(ctx)

	papers := make([]*types.Paper, 0)
	for cursor.Next(ctx) {
		var paper types.Paper
		if err := cursor.Decode(&paper); err != nil {
			return nil, &types.PersistenceError{Op: "decode paper", Err: err}
		}
		papers = append(papers, &paper)
	}
	if err := cursor.Err(); err != nil {
		return nil, &types.PersistenceError{Op: "find papers by title", Err: err}
	}
	return papers, nil
}

func (r *paperRepo) DeleteByID(ctx context.Context, id, userID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return &types.PersistenceError{Op: "delete paper", Err: err}
	}
	if res.DeletedCount == 0 {
		return &types.NotFoundError{Resource: "paper", Key: id}
	}
	return nil
}
