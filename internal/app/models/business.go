package models

type Business struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Slug      string `json:"slug" bson:"slug"`
	Active    bool   `json:"active" bson:"active"`
	TimeModel `bson:",inline"`
}
