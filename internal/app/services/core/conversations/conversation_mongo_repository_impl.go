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

type ConversationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConversationMongoRepository(db *mongo.Client, dbName string) contracts.ConversationRepository {
	return &ConversationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConversations),
	}
}

func (r *ConversationMongoRepository) CreateConversation(ctx context.Context, conversationModel *models.Conversation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, conversationModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConversationMongoRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var conversation models.Conversation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (r *ConversationMongoRepository) FindActiveByPatientID(ctx context.Context, patientID string) (*models.Conversation, error) {
	filter := bson.M{
		"patientId": patientID,
		"status":    constvars.ConversationStatusInitiated,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var conversation models.Conversation
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (r *ConversationMongoRepository) UpdateConversation(ctx context.Context, conversationModel *models.Conversation) error {
	objectID, err := primitive.ObjectIDFromHex(conversationModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    conversationModel.Status,
		"endedAt":   conversationModel.EndedAt,
		"updatedAt": conversationModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
