package services

import (
	"context"

	"github.com/productr/server/connect"
	"github.com/productr/server/enums"
	"github.com/productr/server/errors"
	"github.com/productr/server/models"
	"gorm.io/gorm"
)

// User contains all the user related services
type User struct {
	Conn *connect.Connector
}

// Upsert is a function that creates or updates the user that is addressed by the
// given identifier, setting the field of the channel that was used. Fields from
// earlier logins are kept, a user that registered with an email and later logs
// in with a phone number ends up with both
func (u *User) Upsert(ctx context.Context, identifier string, channel enums.Channel) error {
	err := u.Conn.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("email = ? OR phone = ?", identifier, identifier).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				if channel == enums.ChannelEmail {
					user.Email = &identifier
				} else {
					user.Phone = &identifier
				}

				return tx.Create(&user).Error
			}

			return err
		}

		if channel == enums.ChannelEmail {
			return tx.Model(&user).Update("email", identifier).Error
		}

		return tx.Model(&user).Update("phone", identifier).Error
	})
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			// lost a race against a concurrent send for the same identifier,
			// the user row exists now which is all that matters
			return nil
		}

		return err
	}

	return nil
}

// ByIdentifier is a function that returns the user that is addressed by the
// given email or phone identifier
func (u *User) ByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := u.Conn.DB.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
