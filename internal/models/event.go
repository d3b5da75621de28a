package models

import "time"

// Event is a document in the events collection. Field names in JSON match
// what the mobile client decodes.
type Event struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Date        string    `json:"date" bson:"date"`
	Location    string    `json:"location" bson:"location"`
	UserID      string    `json:"userId" bson:"user_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CreateEventRequest is the JSON body for POST /api/events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}
