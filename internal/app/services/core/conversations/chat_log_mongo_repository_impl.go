package conversations

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatLogMongoRepository(db *mongo.Client, dbName string) contracts.ChatLogRepository {
	return &ChatLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChatLogs),
	}
}

func (r *ChatLogMongoRepository) CreateChatLogMessage(ctx context.Context, messageModel *models.ChatLogMessage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, messageModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ChatLogMongoRepository) FindByConversationID(ctx context.Context, conversationID string) ([]models.ChatLogMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.ChatLogMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}
