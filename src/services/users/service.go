package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const queryTimeout = 5 * time.Second

// Service จัดการผู้ใช้ (CRUD)
type Service interface {
	Create(ctx context.Context, dto models.CreateUserDto) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindOne(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, dto models.UpdateUserDto) (*models.User, error)
	Remove(ctx context.Context, id string) (*models.User, error)
}

type service struct {
	repo repositories.UserRepository
	now  func() time.Time
}

func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, dto models.CreateUserDto) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := s.now().UTC()
	user := &models.User{
		Email:     strings.TrimSpace(dto.Email),
		Name:      strings.TrimSpace(dto.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dto.Password != "" {
		hashed, err := HashPassword(dto.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	return s.repo.Create(ctx, user)
}

func (s *service) FindAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.repo.FindAll(ctx)
}

func (s *service) FindOne(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.repo.FindByID(ctx, id)
}

// Update อัปเดตเฉพาะฟิลด์ที่ส่งมา; an empty patch only returns the current document.
func (s *service) Update(ctx context.Context, id string, dto models.UpdateUserDto) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if dto.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	fields := bson.M{"updatedAt": s.now().UTC()}
	if dto.Email != nil {
		fields["email"] = strings.TrimSpace(*dto.Email)
	}
	if dto.Name != nil {
		fields["name"] = strings.TrimSpace(*dto.Name)
	}
	if dto.Password != nil {
		hashed, err := HashPassword(*dto.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *service) Remove(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// HashPassword hashes a plain password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
