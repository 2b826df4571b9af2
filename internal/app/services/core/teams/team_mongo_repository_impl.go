package teams

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

type TeamMongoRepository struct {
	Collection *mongo.Collection
}

func NewTeamMongoRepository(db *mongo.Client, dbName string) contracts.TeamRepository {
	return &TeamMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTeams),
	}
}

func (r *TeamMongoRepository) CreateTeam(ctx context.Context, teamModel *models.Team) (string, error) {
	result, err := r.Collection.InsertOne(ctx, teamModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TeamMongoRepository) FindByID(ctx context.Context, teamID string) (*models.Team, error) {
	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var team models.Team
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &team, nil
}

func (r *TeamMongoRepository) FindAll(ctx context.Context) ([]models.Team, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	teams := make([]models.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return teams, nil
}
