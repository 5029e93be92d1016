package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContentRepo struct {
	MongoCollection *mongo.Collection
}

func GetContentRepo(client *mongo.Client) *ContentRepo {
	return &ContentRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("contents"),
	}
}

func (r *ContentRepo) CreateContent(ctx context.Context, content *model.Content) error {
	timer := utils.TrackDBOperation("insert", "contents")
	defer timer.ObserveDuration()

	if content.UserID == "" {
		return errors.New("user ID is required")
	}

	content.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, content)
	if err != nil {
		utils.TrackError("database", "content_creation_failed")
		return err
	}
	return nil
}

// GetUserContents retrieves all content for one user, newest first.
func (r *ContentRepo) GetUserContents(ctx context.Context, userID string) ([]*model.Content, error) {
	timer := utils.TrackDBOperation("find", "contents")
	defer timer.ObserveDuration()

	var contents []*model.Content
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "content_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// GetOwnedContent looks up a content record by id and owner in one
// filter, so a nonexistent id and someone else's id are indistinguishable.
// Returns (nil, nil) when no record matches.
func (r *ContentRepo) GetOwnedContent(ctx context.Context, contentID string, userID string) (*model.Content, error) {
	timer := utils.TrackDBOperation("find", "contents")
	defer timer.ObserveDuration()

	var content model.Content
	filter := bson.M{
		"_id":     contentID,
		"user_id": userID,
	}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "content_lookup_error")
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepo) DeleteContent(ctx context.Context, contentID string) error {
	timer := utils.TrackDBOperation("delete", "contents")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": contentID})
	if err != nil {
		utils.TrackError("database", "content_deletion_failed")
		return err
	}
	return nil
}

// CountByTag reports how many content records still reference a tag.
func (r *ContentRepo) CountByTag(ctx context.Context, tagID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "contents")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"tags": tagID})
	if err != nil {
		utils.TrackError("database", "content_count_error")
		return 0, err
	}
	return count, nil
}
