package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedTrip is a stored plan snapshot. The store assigns the id; it is
// rendered as hex text in JSON.
type SavedTrip struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Plan      PlanResponse       `json:"plan" bson:"plan"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// TripSaveRequest is the payload for POST /api/trips.
type TripSaveRequest struct {
	Name string       `json:"name"`
	Plan PlanResponse `json:"plan"`
}
