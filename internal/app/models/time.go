package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" bson:"deletedAt,omitempty"`
}
