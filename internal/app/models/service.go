package models

type Service struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	BusinessID      string `json:"businessId" bson:"businessId"`
	Name            string `json:"name" bson:"name"`
	DurationMinutes int    `json:"durationMinutes" bson:"durationMinutes"`
	Price           int    `json:"price" bson:"price"`
	Active          bool   `json:"active" bson:"active"`
	TimeModel       `bson:",inline"`
}
