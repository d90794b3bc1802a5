package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// FriendListSeparator joins friend IDs in the stored representation.
const FriendListSeparator = ","

// FriendList is an ordered set of user IDs. It is stored and transferred as a
// single comma-joined string; the empty list is the empty string.
type FriendList []string

// ParseFriendList splits a stored friend list, dropping empty elements and
// duplicates while keeping the first occurrence order. IDs are kept byte for
// byte so that parsing is the inverse of String.
func ParseFriendList(s string) FriendList {
	if s == "" {
		return FriendList{}
	}

	parts := strings.Split(s, FriendListSeparator)
	list := make(FriendList, 0, len(parts))
	for _, id := range parts {
		if id == "" || list.Contains(id) {
			continue
		}
		list = append(list, id)
	}
	return list
}

// String returns the stored representation of the list.
func (l FriendList) String() string {
	return strings.Join(l, FriendListSeparator)
}

// Contains reports whether id is in the list.
func (l FriendList) Contains(id string) bool {
	return slices.Contains(l, id)
}

// Add returns the list with id appended. The second result is false when id was
// already present, in which case the list is returned unchanged.
func (l FriendList) Add(id string) (FriendList, bool) {
	if l.Contains(id) {
		return l, false
	}
	out := make(FriendList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, id), true
}

// Remove returns the list without id. The second result is false when id was
// not present.
func (l FriendList) Remove(id string) (FriendList, bool) {
	idx := slices.Index(l, id)
	if idx < 0 {
		return l, false
	}
	out := make(FriendList, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// Scan implements sql.Scanner. NULL scans into an empty list.
func (l *FriendList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = FriendList{}
	case string:
		*l = ParseFriendList(v)
	case []byte:
		*l = ParseFriendList(string(v))
	default:
		return fmt.Errorf("friend list: unsupported source type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (l FriendList) Value() (driver.Value, error) {
	return l.String(), nil
}

// MarshalJSON encodes the list in its stored string form.
func (l FriendList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes the stored string form.
func (l *FriendList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseFriendList(s)
	return nil
}
