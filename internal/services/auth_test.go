package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		username   string
		password   string
		wallColor  string
		expectSave bool
		writerErr  error
		wantErr    error
	}{
		{
			name:       "successful registration",
			id:         "u1",
			username:   "Alice",
			password:   "pw123",
			wallColor:  "#fff",
			expectSave: true,
		},
		{
			name:      "missing password",
			id:        "u1",
			username:  "Alice",
			wallColor: "#fff",
			wantErr:   services.ErrValidation,
		},
		{
			name:     "missing wall color",
			id:       "u1",
			username: "Alice",
			password: "pw123",
			wantErr:  services.ErrValidation,
		},
		{
			name:       "unique violation",
			id:         "u1",
			username:   "Alice",
			password:   "pw123",
			wallColor:  "#fff",
			expectSave: true,
			writerErr:  repositories.ErrUniqueViolation,
			wantErr:    services.ErrUserConflict,
		},
		{
			name:       "writer error",
			id:         "u2",
			username:   "Bob",
			password:   "pw",
			wallColor:  "#000",
			expectSave: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockCache := services.NewMockUsernameCache(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockCache)

			if tt.expectSave {
				mockWriter.EXPECT().
					SaveWithPassword(gomock.Any(), tt.id, tt.username, gomock.Any(), tt.wallColor).
					DoAndReturn(func(_ context.Context, _, _, hash, _ string) error {
						// plaintext never reaches the store
						assert.NotEqual(t, tt.password, hash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}
			if tt.expectSave && tt.writerErr == nil {
				mockCache.EXPECT().DeleteUsername(gomock.Any(), tt.id).Return(nil)
			}

			err := svc.Register(context.Background(), tt.id, tt.username, tt.password, tt.wallColor)
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, services.ErrValidation), errors.Is(tt.wantErr, services.ErrUserConflict):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestAuthService_SaveProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockCache := services.NewMockUsernameCache(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockCache)
	ctx := context.Background()

	t.Run("saved and cache invalidated", func(t *testing.T) {
		mockWriter.EXPECT().SaveWithoutPassword(gomock.Any(), "guest", "Guest", "#000").Return(nil)
		mockCache.EXPECT().DeleteUsername(gomock.Any(), "guest").Return(errors.New("redis down"))

		assert.NoError(t, svc.SaveProfile(ctx, "guest", "Guest", "#000"))
	})

	t.Run("missing username", func(t *testing.T) {
		err := svc.SaveProfile(ctx, "guest", "", "#000")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().SaveWithoutPassword(gomock.Any(), "guest", "Guest", "#000").Return(errors.New("db error"))

		assert.EqualError(t, svc.SaveProfile(ctx, "guest", "Guest", "#000"), "db error")
	})

	t.Run("works without cache", func(t *testing.T) {
		svc := services.NewAuthService(mockReader, mockWriter, nil)
		mockWriter.EXPECT().SaveWithoutPassword(gomock.Any(), "guest", "Guest", "#000").Return(nil)

		assert.NoError(t, svc.SaveProfile(ctx, "guest", "Guest", "#000"))
	})
}

func TestAuthService_Login(t *testing.T) {
	password := "pw123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hash := string(hashed)
	empty := ""

	tests := []struct {
		name      string
		id        string
		loginPass string
		user      *models.UserDB
		readerErr error
		skipRead  bool
		wantErr   error
	}{
		{
			name:      "successful login",
			id:        "u1",
			loginPass: password,
			user:      &models.UserDB{ID: "u1", Username: "Alice", Password: &hash},
		},
		{
			name:      "wrong password",
			id:        "u1",
			loginPass: "wrong",
			user:      &models.UserDB{ID: "u1", Username: "Alice", Password: &hash},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "user does not exist",
			id:        "nobody",
			loginPass: password,
			readerErr: repositories.ErrNotFound,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "no password set",
			id:        "guest",
			loginPass: password,
			user:      &models.UserDB{ID: "guest", Username: "Guest"},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "empty stored password",
			id:        "guest",
			loginPass: password,
			user:      &models.UserDB{ID: "guest", Username: "Guest", Password: &empty},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:     "missing password",
			id:       "u1",
			skipRead: true,
			wantErr:  services.ErrValidation,
		},
		{
			name:      "reader error",
			id:        "u1",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), nil)

			if !tt.skipRead {
				mockReader.EXPECT().GetByID(gomock.Any(), tt.id).Return(tt.user, tt.readerErr)
			}

			err := svc.Login(context.Background(), tt.id, tt.loginPass)
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, services.ErrInvalidCredentials), errors.Is(tt.wantErr, services.ErrValidation):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}
