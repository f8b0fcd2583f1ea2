package nutrition

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BMIRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewBMIRecordMongoRepository(db *mongo.Database) contracts.BMIRecordRepository {
	return &BMIRecordMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBMIRecords),
	}
}

func (repo *BMIRecordMongoRepository) Create(ctx context.Context, record *models.BMIRecord) (string, error) {
	record.ID = ""
	result, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
