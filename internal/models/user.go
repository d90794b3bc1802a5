package models

// UserDB represents a row of the users table.
type UserDB struct {
	ID         string     `json:"id" db:"id"`                 // Externally supplied primary key
	Username   string     `json:"username" db:"username"`     // Display name, not unique
	Password   *string    `json:"-" db:"password"`            // bcrypt hash, nil when no password was set
	WallColor  string     `json:"wallcolor" db:"wallcolor"`   // Display preference
	FriendList FriendList `json:"friendlist" db:"friendlist"` // IDs of users added as friends
}

// HasPassword reports whether the user can log in.
func (u *UserDB) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}

// FriendProfile is the public view of a user returned by friend search.
// swagger:model FriendProfile
type FriendProfile struct {
	// User ID
	// example: u2
	ID string `json:"id"`

	// Display name
	// example: Bob
	Username string `json:"username"`

	// Wall color
	// example: #00ff00
	WallColor string `json:"wallcolor"`

	// Comma-joined friend IDs
	// example: u1,u3
	FriendList FriendList `json:"friendlist"`
}

// Profile returns the public part of the user record.
func (u *UserDB) Profile() *FriendProfile {
	return &FriendProfile{
		ID:         u.ID,
		Username:   u.Username,
		WallColor:  u.WallColor,
		FriendList: u.FriendList,
	}
}
