package businesses

import (
	"context"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BusinessMongoRepository struct {
	Collection *mongo.Collection
}

func NewBusinessMongoRepository(db *mongo.Client, dbName string) contracts.BusinessRepository {
	return &BusinessMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBusinesses),
	}
}

func (r *BusinessMongoRepository) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var business models.Business
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug, "active": true}).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &business, nil
}

func (r *BusinessMongoRepository) CreateBusiness(ctx context.Context, business *models.Business) (*models.Business, error) {
	business.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, business)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	business.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return business, nil
}
