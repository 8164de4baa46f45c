package appointments

import (
	"context"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ActiveBooking = !appointment.IsCancelled()
	appointment.SetCreatedAtUpdatedAt()

	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrDuplicateBooking(err, appointment.WorkerName, appointment.Date, appointment.Time)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return appointment, nil
}

func (r *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "businessId": businessID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAppointments(ctx context.Context, businessID string, filter *requests.QueryParams) ([]models.Appointment, error) {
	mongoFilter := bson.M{"businessId": businessID}
	if filter.Date != "" {
		mongoFilter["date"] = filter.Date
	}
	if filter.WorkerID != "" {
		workerMatch := []bson.M{{"workerId": filter.WorkerID}}
		if filter.WorkerName != "" {
			// legacy documents kept only the worker name
			workerMatch = append(workerMatch, bson.M{"workerId": "", "workerName": filter.WorkerName})
		}
		mongoFilter["$or"] = workerMatch
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.Collection.Find(ctx, mongoFilter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

// FindActiveAppointmentsByDate returns every non-cancelled appointment of
// the business on the given date. It backs the conflict checks and the
// availability grid.
func (r *AppointmentMongoRepository) FindActiveAppointmentsByDate(ctx context.Context, businessID, date string) ([]models.Appointment, error) {
	filter := bson.M{"businessId": businessID, "date": date, "activeBooking": true}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	appointment.ActiveBooking = !appointment.IsCancelled()
	appointment.SetUpdatedAt()

	update := bson.M{"$set": bson.M{
		"serviceId":       appointment.ServiceID,
		"serviceName":     appointment.ServiceName,
		"serviceDuration": appointment.ServiceDuration,
		"date":            appointment.Date,
		"time":            appointment.Time,
		"workerId":        appointment.WorkerID,
		"workerName":      appointment.WorkerName,
		"status":          appointment.Status,
		"activeBooking":   appointment.ActiveBooking,
		"updatedAt":       appointment.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrDuplicateBooking(err, appointment.WorkerName, appointment.Date, appointment.Time)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return appointment, nil
}
