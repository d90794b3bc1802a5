package models

// ScreamEvent is published to Kafka after a scream has been stored.
type ScreamEvent struct {
	EventID       string `json:"event_id"`       // EventID is a unique identifier for the event.
	ScreamID      int64  `json:"scream_id"`      // ScreamID is the database id of the new scream.
	UserID        string `json:"user_id"`        // UserID is the author of the scream.
	CategoryIndex int    `json:"category_index"` // CategoryIndex is the client-defined category.
	ScreamDate    string `json:"scream_date"`    // ScreamDate is the client-supplied timestamp.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix time (in seconds) the event was created.
}
