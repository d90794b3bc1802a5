package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
)

//go:generate mockgen -source=friend.go -destination=mock_friend.go -package=services

// FriendListStore reads and replaces a user's friend list.
type FriendListStore interface {
	GetForUpdate(ctx context.Context, userID string) (models.FriendList, error)
	Save(ctx context.Context, userID string, list models.FriendList) error
}

// FriendService edits friend lists.
type FriendService struct {
	store FriendListStore
}

// NewFriendService creates a new FriendService.
func NewFriendService(store FriendListStore) *FriendService {
	return &FriendService{store: store}
}

// AddFriend appends friendUserID to the list of myUserID. Adding a friend twice
// is a successful no-op. The friend is not required to exist.
func (svc *FriendService) AddFriend(ctx context.Context, myUserID, friendUserID string) (models.FriendOutcome, error) {
	list, err := svc.load(ctx, myUserID, friendUserID)
	if err != nil {
		return 0, err
	}

	list, added := list.Add(friendUserID)
	if !added {
		return models.FriendAlreadyExists, nil
	}

	if err := svc.save(ctx, myUserID, list); err != nil {
		return 0, err
	}
	return models.FriendAdded, nil
}

// DeleteFriend removes friendUserID from the list of myUserID. A friend that is
// not in the list yields FriendNotInList without error.
func (svc *FriendService) DeleteFriend(ctx context.Context, myUserID, friendUserID string) (models.FriendOutcome, error) {
	list, err := svc.load(ctx, myUserID, friendUserID)
	if err != nil {
		return 0, err
	}

	list, removed := list.Remove(friendUserID)
	if !removed {
		return models.FriendNotInList, nil
	}

	if err := svc.save(ctx, myUserID, list); err != nil {
		return 0, err
	}
	return models.FriendDeleted, nil
}

func (svc *FriendService) load(ctx context.Context, myUserID, friendUserID string) (models.FriendList, error) {
	if err := requireFields("myUserID", myUserID, "friendUserID", friendUserID); err != nil {
		return nil, err
	}
	if strings.Contains(friendUserID, models.FriendListSeparator) {
		return nil, fmt.Errorf("%w: friendUserID must not contain %q", ErrValidation, models.FriendListSeparator)
	}

	list, err := svc.store.GetForUpdate(ctx, myUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to read friend list", "userID", myUserID, "err", err)
		return nil, err
	}
	return list, nil
}

func (svc *FriendService) save(ctx context.Context, myUserID string, list models.FriendList) error {
	if err := svc.store.Save(ctx, myUserID, list); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to save friend list", "userID", myUserID, "err", err)
		return err
	}
	return nil
}
