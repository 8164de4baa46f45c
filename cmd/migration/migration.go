package main

import (
	"context"
	"log"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the collection indexes and seeds a demo tenant. Safe to run more
// than once: indexes are created by name and every seed document is upserted
// on its natural key.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	err := createIndexes(ctx, db)
	if err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}
	log.Println("Successfully created indexes")

	err = seedDemoTenant(ctx, db)
	if err != nil {
		log.Fatalf("Error seeding demo tenant: %v", err)
	}
	log.Println("Successfully seeded demo tenant")

	err = client.Disconnect(ctx)
	if err != nil {
		log.Fatalf("Error closing MongoDB: %v", err)
	}
}

func createIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionBusinesses).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("uniq_slug").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "username", Value: 1}},
		Options: options.Index().SetName("uniq_business_username").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionServices).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("business_name"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionWorkers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("business_name"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionAppointments).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Partial filter expressions cannot express "status != cancelada",
			// the activeBooking flag on the document carries that meaning.
			Keys: bson.D{
				{Key: "businessId", Value: 1},
				{Key: "workerId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetName("uniq_active_worker_slot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"activeBooking": true,
					"workerId":      bson.M{"$gt": ""},
				}),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("business_date"),
		},
	})
	return err
}

func seedDemoTenant(ctx context.Context, db *mongo.Database) error {
	now := time.Now()
	upsert := options.Update().SetUpsert(true)

	businessFilter := bson.M{"slug": "magicbeautycol"}
	_, err := db.Collection(constvars.MongoCollectionBusinesses).UpdateOne(ctx, businessFilter, bson.M{
		"$setOnInsert": bson.M{
			"name":      "Magic Beauty",
			"slug":      "magicbeautycol",
			"active":    true,
			"createdAt": now,
			"updatedAt": now,
		},
	}, upsert)
	if err != nil {
		return err
	}

	var business struct {
		ID string `bson:"_id"`
	}
	err = db.Collection(constvars.MongoCollectionBusinesses).FindOne(ctx, businessFilter).Decode(&business)
	if err != nil {
		return err
	}

	workerNames := []string{"Ana", "Luis", "Carla", "Mario"}
	workerIDs := make(map[string]string, len(workerNames))
	for _, name := range workerNames {
		filter := bson.M{"businessId": business.ID, "name": name}
		_, err = db.Collection(constvars.MongoCollectionWorkers).UpdateOne(ctx, filter, bson.M{
			"$setOnInsert": bson.M{
				"businessId": business.ID,
				"name":       name,
				"active":     true,
				"createdAt":  now,
				"updatedAt":  now,
			},
		}, upsert)
		if err != nil {
			return err
		}

		var worker struct {
			ID string `bson:"_id"`
		}
		err = db.Collection(constvars.MongoCollectionWorkers).FindOne(ctx, filter).Decode(&worker)
		if err != nil {
			return err
		}
		workerIDs[name] = worker.ID
	}

	services := []struct {
		Name            string
		DurationMinutes int
		Price           int
	}{
		{"Corte de cabello", 30, 25000},
		{"Tinte", 90, 80000},
		{"Manicure", 30, 20000},
		{"Pedicure", 30, 25000},
		{"Peinado", 60, 45000},
	}
	for _, service := range services {
		_, err = db.Collection(constvars.MongoCollectionServices).UpdateOne(ctx, bson.M{
			"businessId": business.ID,
			"name":       service.Name,
		}, bson.M{
			"$setOnInsert": bson.M{
				"businessId":      business.ID,
				"name":            service.Name,
				"durationMinutes": service.DurationMinutes,
				"price":           service.Price,
				"active":          true,
				"createdAt":       now,
				"updatedAt":       now,
			},
		}, upsert)
		if err != nil {
			return err
		}
	}

	seedUsers := []struct {
		Username string
		Password string
		Role     string
		WorkerID string
	}{
		{"admin", "admin123", constvars.RoleAdmin, ""},
		{"ana", "empleado123", constvars.RoleEmpleado, workerIDs["Ana"]},
	}
	for _, seedUser := range seedUsers {
		hashedPassword, err := utils.HashPassword(seedUser.Password)
		if err != nil {
			return err
		}

		document := bson.M{
			"businessId": business.ID,
			"username":   seedUser.Username,
			"password":   hashedPassword,
			"role":       seedUser.Role,
			"createdAt":  now,
			"updatedAt":  now,
		}
		if seedUser.WorkerID != "" {
			document["workerId"] = seedUser.WorkerID
		}

		_, err = db.Collection(constvars.MongoCollectionUsers).UpdateOne(ctx, bson.M{
			"businessId": business.ID,
			"username":   seedUser.Username,
		}, bson.M{"$setOnInsert": document}, upsert)
		if err != nil {
			return err
		}
	}

	return nil
}
