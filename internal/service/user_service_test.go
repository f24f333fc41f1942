package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/mocks"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(users store.UserStore, verifier *mocks.MockPasswordVerifier) service.UserService {
	log, _ := logger.NewBufferLogger()
	jwt := &mocks.MockJWTService{Token: "signed-token"}
	return service.NewUserService(users, jwt, verifier, log)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("successful registration", func(t *testing.T) {
		users := new(mocks.UserStore)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@example.com" &&
				u.FullName == "New User" &&
				u.Password == "Abc123" &&
				u.IsActive &&
				len(u.Roles) == 1 && u.Roles[0] == domain.RoleUser
		})).Return(nil)

		res, err := newUserService(users, &mocks.MockPasswordVerifier{}).
			Register(context.Background(), " New@Example.com", "New User", "Abc123")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, "new@example.com", res.User.Email)
		users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(mocks.UserStore)
		users.On("Create", mock.Anything, mock.Anything).Return(&store.DBError{
			Kind:   store.ErrEmailExists,
			Code:   "23505",
			Detail: "Key (email)=(taken@example.com) already exists.",
		})

		_, err := newUserService(users, &mocks.MockPasswordVerifier{}).
			Register(context.Background(), "taken@example.com", "Taken", "Abc123")

		var opErr *service.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.ErrorIs(t, err, service.ErrDuplicateResource)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Equal(t, "Key (email)=(taken@example.com) already exists.", opErr.Detail)
	})

	t.Run("invalid data never reaches the store", func(t *testing.T) {
		users := new(mocks.UserStore)

		_, err := newUserService(users, &mocks.MockPasswordVerifier{}).
			Register(context.Background(), "taken@example.com", "Weak", "abc")

		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		users := new(mocks.UserStore)
		users.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := newUserService(users, &mocks.MockPasswordVerifier{}).
			Register(context.Background(), "a@example.com", "A", "Abc123")

		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	active := &domain.User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		HashedPassword: "hash",
		IsActive:       true,
		Roles:          []domain.Role{domain.RoleUser},
	}
	inactive := *active
	inactive.IsActive = false

	tests := []struct {
		name     string
		user     *domain.User
		storeErr error
		verifyOK bool
		wantErr  error
	}{
		{name: "success", user: active, verifyOK: true},
		{name: "unknown email", storeErr: store.ErrUserNotFound, wantErr: service.ErrInvalidCredentials},
		{name: "wrong password", user: active, verifyOK: false, wantErr: service.ErrInvalidCredentials},
		{name: "inactive user", user: &inactive, verifyOK: true, wantErr: service.ErrInactiveUser},
		{name: "storage failure", storeErr: errors.New("db down"), wantErr: service.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.UserStore)
			users.On("GetByEmail", mock.Anything, "user@example.com").Return(tt.user, tt.storeErr)
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: tt.verifyOK}

			res, err := newUserService(users, verifier).Login(context.Background(), "user@example.com", "Abc123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, active.ID, res.User.ID)
			assert.Equal(t, "signed-token", res.Token)
			assert.Equal(t, "hash", verifier.CompareCalledWith.HashedPassword)
		})
	}
}

func TestUserService_CheckStatus(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), IsActive: true}
	log, _ := logger.NewBufferLogger()

	var issuedFor uuid.UUID
	jwt := &mocks.MockJWTService{
		GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
			issuedFor = userID
			return "fresh", nil
		},
	}
	svc := service.NewUserService(new(mocks.UserStore), jwt, &mocks.MockPasswordVerifier{}, log)

	res, err := svc.CheckStatus(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "fresh", res.Token)
	assert.Same(t, user, res.User)
	assert.Equal(t, user.ID, issuedFor)

	jwt.GenerateTokenFn = nil
	jwt.Err = errors.New("signing failed")
	_, err = svc.CheckStatus(context.Background(), user)
	assert.ErrorIs(t, err, jwt.Err)
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	users := new(mocks.UserStore)
	users.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id}, nil).Once()
	users.On("GetByID", mock.Anything, id).Return(nil, store.ErrUserNotFound).Once()

	svc := newUserService(users, &mocks.MockPasswordVerifier{})

	u, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = svc.GetUser(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	users.AssertExpectations(t)
}
