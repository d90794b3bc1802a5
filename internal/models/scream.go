package models

// ScreamDB represents a row of the screams table.
type ScreamDB struct {
	ID            int64  `json:"id" db:"id"`                       // Assigned by the database
	UserID        string `json:"-" db:"userid"`                    // Owner, not echoed back to clients
	CategoryIndex int    `json:"categoryindex" db:"categoryindex"` // Client-defined category
	Content       string `json:"content" db:"content"`             // Free text
	ScreamDate    string `json:"screamdate" db:"screamdate"`       // Client-supplied timestamp, stored as is
}

// ScreamInput carries the fields of a new scream before validation.
// CategoryIndex is a pointer so that an absent value can be told apart from zero.
type ScreamInput struct {
	UserID        string
	CategoryIndex *int
	Content       string
	ScreamDate    string
}
