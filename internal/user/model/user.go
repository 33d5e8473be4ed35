package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a pool participant.
// Matches the users table schema.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                                   json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                       json:"name"`
	AccessKey string    `gorm:"column:unique_access_key;type:varchar(255);not null;uniqueIndex:idx_users_access_key" json:"unique_access_key"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                                   json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                                                   json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
