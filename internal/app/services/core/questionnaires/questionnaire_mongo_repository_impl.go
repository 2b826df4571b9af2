package questionnaires

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaireModel *models.Questionnaire) (string, error) {
	result, err := r.Collection.InsertOne(ctx, questionnaireModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionnaireMongoRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var questionnaire models.Questionnaire
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Questionnaire, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questionnaires := make([]models.Questionnaire, 0)
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, nil
}

// FindActiveByPatientAndTemplate returns the newest non-completed instance
// for the pair, or nil when the patient has none in flight.
func (r *QuestionnaireMongoRepository) FindActiveByPatientAndTemplate(ctx context.Context, patientID, templateID string) (*models.Questionnaire, error) {
	filter := bson.M{
		"patientId":  patientID,
		"templateId": templateID,
		"currentStatus": bson.M{
			"$in": []string{constvars.QuestionnaireStatusDraft, constvars.QuestionnaireStatusInProgress},
		},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var questionnaire models.Questionnaire
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) UpdateQuestionnaire(ctx context.Context, questionnaireModel *models.Questionnaire) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	questionnaireModel.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"questions":     questionnaireModel.Questions,
		"currentStatus": questionnaireModel.CurrentStatus,
		"updatedAt":     questionnaireModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
