package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFriendList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FriendList
	}{
		{name: "empty", in: "", want: FriendList{}},
		{name: "single", in: "u1", want: FriendList{"u1"}},
		{name: "keeps order", in: "u3,u1,u2", want: FriendList{"u3", "u1", "u2"}},
		{name: "drops empty elements", in: ",u1,,u2,", want: FriendList{"u1", "u2"}},
		{name: "drops duplicates", in: "u1,u2,u1", want: FriendList{"u1", "u2"}},
		{name: "keeps surrounding spaces", in: " u1 ,u2", want: FriendList{" u1 ", "u2"}},
		{name: "only separators", in: ",,,", want: FriendList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFriendList(tt.in))
		})
	}
}

func TestFriendList_AddRemove(t *testing.T) {
	list := FriendList{}

	list, added := list.Add("u2")
	assert.True(t, added)
	list, added = list.Add("u3")
	assert.True(t, added)
	list, added = list.Add("u2")
	assert.False(t, added)
	assert.Equal(t, "u2,u3", list.String())

	list, removed := list.Remove("u4")
	assert.False(t, removed)
	assert.Equal(t, "u2,u3", list.String())

	list, removed = list.Remove("u2")
	assert.True(t, removed)
	assert.Equal(t, "u3", list.String())

	list, removed = list.Remove("u3")
	assert.True(t, removed)
	assert.Equal(t, "", list.String())
	assert.Empty(t, list)
}

func TestFriendList_ValueScanRoundTrip(t *testing.T) {
	lists := []FriendList{
		{},
		{"u1"},
		{"u3", "u1", "u2"},
		{" u2", "u2", "u2 "},
	}

	for _, list := range lists {
		v, err := list.Value()
		require.NoError(t, err)

		var got FriendList
		require.NoError(t, got.Scan(v))
		assert.Equal(t, list, got)

		next, added := got.Add(" u2")
		assert.Equal(t, !list.Contains(" u2"), added)
		v, err = next.Value()
		require.NoError(t, err)
		require.NoError(t, got.Scan(v))
		assert.Equal(t, next, got)
	}
}

func TestFriendList_AddDoesNotAlias(t *testing.T) {
	base := make(FriendList, 1, 4)
	base[0] = "u1"

	a, _ := base.Add("u2")
	b, _ := base.Add("u3")

	assert.Equal(t, FriendList{"u1", "u2"}, a)
	assert.Equal(t, FriendList{"u1", "u3"}, b)
}

func TestFriendList_Scan(t *testing.T) {
	var list FriendList

	require.NoError(t, list.Scan("u1,u2"))
	assert.Equal(t, FriendList{"u1", "u2"}, list)

	require.NoError(t, list.Scan([]byte("u3")))
	assert.Equal(t, FriendList{"u3"}, list)

	require.NoError(t, list.Scan(nil))
	assert.Equal(t, FriendList{}, list)

	assert.Error(t, list.Scan(42))
}

func TestFriendList_Value(t *testing.T) {
	v, err := FriendList{"u1", "u2"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "u1,u2", v)

	v, err = FriendList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestFriendList_JSON(t *testing.T) {
	user := UserDB{ID: "u1", Username: "Alice", WallColor: "#fff", FriendList: FriendList{"u2", "u3"}}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","username":"Alice","wallcolor":"#fff","friendlist":"u2,u3"}`, string(data))

	var list FriendList
	require.NoError(t, json.Unmarshal([]byte(`"u4,,u5,u4"`), &list))
	assert.Equal(t, FriendList{"u4", "u5"}, list)

	assert.Error(t, json.Unmarshal([]byte(`["u1"]`), &list))
}

func TestUserDB_PasswordIsNeverSerialized(t *testing.T) {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	data, err := json.Marshal(UserDB{ID: "u1", Password: &hash})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), hash)
}

func TestUserDB_HasPassword(t *testing.T) {
	empty := ""
	hash := "h"

	assert.False(t, (&UserDB{}).HasPassword())
	assert.False(t, (&UserDB{Password: &empty}).HasPassword())
	assert.True(t, (&UserDB{Password: &hash}).HasPassword())
}

func TestFriendOutcome_String(t *testing.T) {
	assert.Equal(t, "added", FriendAdded.String())
	assert.Equal(t, "already exists", FriendAlreadyExists.String())
	assert.Equal(t, "deleted", FriendDeleted.String())
	assert.Equal(t, "not in list", FriendNotInList.String())
	assert.Equal(t, "unknown", FriendOutcome(0).String())
}
