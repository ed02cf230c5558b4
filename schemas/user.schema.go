package schemas

import (
	"time"

	"github.com/google/uuid"
	"github.com/productr/server/models"
)

// User is schema that contians user freindly user details
type User struct {
	ID        *uuid.UUID `json:"id"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Name      string     `json:"name"`
	Profile   string     `json:"profile"`
	CreatedAt *time.Time `json:"createdAt"`
}

// FilterUser is a function that is used to filter the user model to a user freindly format
func FilterUser(user models.User) User {
	return User{
		ID:        user.ID,
		Email:     deref(user.Email),
		Phone:     deref(user.Phone),
		Name:      user.Name,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
