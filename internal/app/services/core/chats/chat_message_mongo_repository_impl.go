package chats

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatMessageMongoRepository(db *mongo.Database) contracts.ChatMessageRepository {
	return &ChatMessageMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMessages),
	}
}

func (repo *ChatMessageMongoRepository) Create(ctx context.Context, message *models.ChatMessage) (string, error) {
	message.ID = ""
	result, err := repo.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindConversation returns messages in both directions, oldest first.
func (repo *ChatMessageMongoRepository) FindConversation(ctx context.Context, participantA, participantB string) ([]models.ChatMessage, error) {
	filter := conversationFilter(participantA, participantB)
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	messages := []models.ChatMessage{}
	err = cursor.All(ctx, &messages)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func conversationFilter(participantA, participantB string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"senderId": participantA, "receiverId": participantB},
			bson.M{"senderId": participantB, "receiverId": participantA},
		},
	}
}
