package templates

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewTemplateMongoRepository(db *mongo.Client, dbName string) contracts.TemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTemplates),
	}
}

func (r *TemplateMongoRepository) CreateTemplate(ctx context.Context, templateModel *models.Template) (string, error) {
	result, err := r.Collection.InsertOne(ctx, templateModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.Template, error) {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var template models.Template
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *TemplateMongoRepository) FindAll(ctx context.Context) ([]models.Template, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := make([]models.Template, 0)
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}
