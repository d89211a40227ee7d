package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SchedulerConfig เอกสารตั้งค่า scheduler (status ถูกบังคับเป็น false ตอนสร้าง)
type SchedulerConfig struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Timezone    string             `bson:"timezone,omitempty" json:"timezone,omitempty"`
	SlotMinutes int                `bson:"slotMinutes,omitempty" json:"slotMinutes,omitempty"`
	StartTime   string             `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string             `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Weekdays    []string           `bson:"weekdays,omitempty" json:"weekdays,omitempty"`
	Status      bool               `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CreateSchedulerConfigDto body ของ POST /scheduler/config; status is accepted but ignored.
type CreateSchedulerConfigDto struct {
	Name        string   `json:"name,omitempty" example:"Mentoria"`
	Timezone    string   `json:"timezone,omitempty" example:"America/Sao_Paulo"`
	SlotMinutes int      `json:"slotMinutes,omitempty" validate:"omitempty,min=1" example:"30"`
	StartTime   string   `json:"startTime,omitempty" example:"09:00"`
	EndTime     string   `json:"endTime,omitempty" example:"18:00"`
	Weekdays    []string `json:"weekdays,omitempty" validate:"omitempty,dive,oneof=seg ter qua qui sex sab dom"`
	Status      *bool    `json:"status,omitempty"`
}
