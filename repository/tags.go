package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TagRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagRepo(client *mongo.Client) *TagRepo {
	return &TagRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("tags"),
	}
}

func (r *TagRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		utils.TrackError("database", "tag_creation_failed")
		return err
	}

	return nil
}

// FindByTitle returns (nil, nil) when no tag matches.
func (r *TagRepo) FindByTitle(ctx context.Context, title string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"title": title}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "tag_lookup_error")
		return nil, err
	}

	return &tag, nil
}

func (r *TagRepo) FindByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tags []*model.Tag
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": tagIDs}})
	if err != nil {
		utils.TrackError("database", "tag_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepo) DeleteTag(ctx context.Context, tagID string) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": tagID})
	if err != nil {
		utils.TrackError("database", "tag_deletion_failed")
		return err
	}

	return nil
}

func (r *TagRepo) AllTitles(ctx context.Context) ([]string, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tags []*model.Tag
	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "tag_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(tags))
	for _, tag := range tags {
		titles = append(titles, tag.Title)
	}
	return titles, nil
}
