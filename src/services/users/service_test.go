package users

import (
	"context"
	"testing"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, fields bson.M) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func returnArg(args mock.Arguments) *models.User {
	return args.Get(1).(*models.User)
}

func TestUserService(t *testing.T) {
	suite := test.NewTestSuiteResult("User Service Tests")
	defer suite.PrintSummary()
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.Run(t, "CreateHashesPassword", func(t *testing.T) {
		repo := new(MockUserRepository)
		var stored *models.User
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) { stored = returnArg(args) }).
			Return(&models.User{Email: "ana@x.com", Name: "Ana"}, nil)

		user, err := NewService(repo).Create(ctx, models.CreateUserDto{Email: " ana@x.com ", Name: "Ana", Password: "1234"})
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", user.Email)

		require.NotNil(t, stored)
		assert.Equal(t, "ana@x.com", stored.Email)
		assert.NotEqual(t, "1234", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("1234")))
		assert.False(t, stored.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	suite.Run(t, "CreateWithoutPassword", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool { return u.Password == "" })).
			Return(&models.User{Email: "bia@x.com", Name: "Bia"}, nil)

		_, err := NewService(repo).Create(ctx, models.CreateUserDto{Email: "bia@x.com", Name: "Bia"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	suite.Run(t, "FindAll", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindAll", mock.Anything).Return([]models.User{{Email: "a@x.com"}, {Email: "b@x.com"}}, nil)

		users, err := NewService(repo).FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	suite.Run(t, "FindOneNotFound", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, errorz.ErrNotFound)

		_, err := NewService(repo).FindOne(ctx, id)
		assert.ErrorIs(t, err, errorz.ErrNotFound)
	})

	suite.Run(t, "UpdateSetsOnlyGivenFields", func(t *testing.T) {
		repo := new(MockUserRepository)
		name := " Ana Maria "
		repo.On("Update", mock.Anything, id, mock.MatchedBy(func(f bson.M) bool {
			_, hasEmail := f["email"]
			_, hasStamp := f["updatedAt"]
			return f["name"] == "Ana Maria" && !hasEmail && hasStamp
		})).Return(&models.User{Name: "Ana Maria"}, nil)

		user, err := NewService(repo).Update(ctx, id, models.UpdateUserDto{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", user.Name)
		repo.AssertExpectations(t)
	})

	suite.Run(t, "EmptyUpdateReadsCurrent", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, id).Return(&models.User{Name: "Ana"}, nil)

		user, err := NewService(repo).Update(ctx, id, models.UpdateUserDto{})
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run(t, "RemoveReturnsDeleted", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Delete", mock.Anything, id).Return(&models.User{Email: "gone@x.com"}, nil)

		user, err := NewService(repo).Remove(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "gone@x.com", user.Email)
	})
}
