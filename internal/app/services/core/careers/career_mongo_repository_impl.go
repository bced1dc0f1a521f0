package careers

import (
	"context"

	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CareerMongoRepository struct {
	Collection *mongo.Collection
}

func NewCareerMongoRepository(db *mongo.Client, dbName string) CareerRepository {
	return &CareerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCareerApplications),
	}
}

func (repo *CareerMongoRepository) CreateApplication(ctx context.Context, application *models.CareerApplication) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, application)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CareerMongoRepository) FindAllApplications(ctx context.Context) ([]models.CareerApplication, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	applications := make([]models.CareerApplication, 0)
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return applications, nil
}
