package catalog

import (
	"context"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) FindServicesByBusinessID(ctx context.Context, businessID string) ([]models.Service, error) {
	filter := bson.M{"businessId": businessID, "active": true}
	findOptions := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (r *ServiceMongoRepository) FindServiceByID(ctx context.Context, businessID, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var service models.Service
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "businessId": businessID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *ServiceMongoRepository) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	service.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, service)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	service.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return service, nil
}

func (r *ServiceMongoRepository) UpdateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(service.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	service.SetUpdatedAt()

	update := bson.M{"$set": bson.M{
		"name":            service.Name,
		"durationMinutes": service.DurationMinutes,
		"price":           service.Price,
		"active":          service.Active,
		"updatedAt":       service.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return service, nil
}
