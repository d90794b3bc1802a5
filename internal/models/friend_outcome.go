package models

// FriendOutcome describes the result of a friend list edit.
type FriendOutcome int

const (
	FriendAdded FriendOutcome = iota + 1
	FriendAlreadyExists
	FriendDeleted
	FriendNotInList
)

func (o FriendOutcome) String() string {
	switch o {
	case FriendAdded:
		return "added"
	case FriendAlreadyExists:
		return "already exists"
	case FriendDeleted:
		return "deleted"
	case FriendNotInList:
		return "not in list"
	default:
		return "unknown"
	}
}
