package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) FindUsersByBusinessID(ctx context.Context, businessID string) ([]models.User, error) {
	filter := bson.M{"businessId": businessID, "deletedAt": bson.M{"$exists": false}}
	findOptions := options.Find().SetSort(bson.M{"username": 1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) FindUserByID(ctx context.Context, businessID, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var user models.User
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "businessId": businessID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindUserByUsername(ctx context.Context, businessID, username string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"businessId": businessID, "username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return user, nil
}

func (r *UserMongoRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	user.SetUpdatedAt()

	set := bson.M{
		"password":  user.Password,
		"role":      user.Role,
		"workerId":  user.WorkerID,
		"updatedAt": user.UpdatedAt,
	}
	if user.DeletedAt != nil {
		set["deletedAt"] = user.DeletedAt
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return user, nil
}
