package models

type Worker struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	BusinessID string `json:"businessId" bson:"businessId"`
	Name       string `json:"name" bson:"name"`
	Active     bool   `json:"active" bson:"active"`
	TimeModel  `bson:",inline"`
}
