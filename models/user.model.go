package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user that signed in with an email or a phone number.
// Email and Phone are nullable; a user is reachable by whichever one is set.
type User struct {
	ID        *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt *time.Time `gorm:"not null;default:now()"`
	UpdatedAt *time.Time `gorm:"not null;default:now()"`
	Email     *string    `gorm:"type:varchar(255);uniqueIndex;default:null"`
	Phone     *string    `gorm:"type:varchar(20);uniqueIndex;default:null"`
	Name      string     `gorm:"type:varchar(150);default:''"`
	Profile   string     `gorm:"type:varchar(255);default:''"`
}
