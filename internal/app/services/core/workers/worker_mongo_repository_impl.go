package workers

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

type WorkerMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkerMongoRepository(db *mongo.Client, dbName string) contracts.WorkerRepository {
	return &WorkerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWorkers),
	}
}

func (r *WorkerMongoRepository) FindWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error) {
	return r.findWorkers(ctx, bson.M{"businessId": businessID})
}

// FindActiveWorkersByBusinessID returns active workers sorted by name so
// auto-assignment walks the roster in a stable order.
func (r *WorkerMongoRepository) FindActiveWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error) {
	return r.findWorkers(ctx, bson.M{"businessId": businessID, "active": true})
}

func (r *WorkerMongoRepository) findWorkers(ctx context.Context, filter bson.M) ([]models.Worker, error) {
	findOptions := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	workers := make([]models.Worker, 0)
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return workers, nil
}

func (r *WorkerMongoRepository) FindWorkerByID(ctx context.Context, businessID, workerID string) (*models.Worker, error) {
	objectID, err := primitive.ObjectIDFromHex(workerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var worker models.Worker
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "businessId": businessID}).Decode(&worker)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &worker, nil
}

func (r *WorkerMongoRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	worker.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, worker)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	worker.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return worker, nil
}

func (r *WorkerMongoRepository) UpdateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	objectID, err := primitive.ObjectIDFromHex(worker.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	worker.SetUpdatedAt()

	update := bson.M{"$set": bson.M{
		"name":      worker.Name,
		"active":    worker.Active,
		"updatedAt": worker.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return worker, nil
}
