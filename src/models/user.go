package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User ผู้ใช้งานฝั่ง backend
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password,omitempty" json:"-"` // ✅ รับจาก request ได้ แต่ไม่ส่งกลับ
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CreateUserDto body ของ POST /users
type CreateUserDto struct {
	Email    string `json:"email" validate:"required,email" example:"ana@x.com"`
	Name     string `json:"name" validate:"required" example:"Ana Costa"`
	Password string `json:"password,omitempty" validate:"omitempty,min=4" example:"1234"`
}

// UpdateUserDto is the partial body of PATCH /users/:id; nil fields are left untouched.
type UpdateUserDto struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

// IsEmpty reports whether the patch carries no field at all.
func (d UpdateUserDto) IsEmpty() bool {
	return d.Email == nil && d.Name == nil && d.Password == nil
}

// UserProjection is the trimmed user returned by POST /users.
type UserProjection struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Projection() UserProjection {
	return UserProjection{Email: u.Email, Name: u.Name}
}
