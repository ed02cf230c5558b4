package validate_test

import (
	"testing"

	"github.com/productr/server/enums"
	"github.com/productr/server/errors"
	"github.com/productr/server/validate"
)

func TestIdentifier(t *testing.T) {
	args := []struct {
		name           string
		email          string
		phone          string
		wantIdentifier string
		wantChannel    enums.Channel
		wantErr        error
	}{
		{
			name:           "valid email is lowercased",
			email:          "John.Doe@Example.COM",
			wantIdentifier: "john.doe@example.com",
			wantChannel:    enums.ChannelEmail,
		},
		{
			name:           "already canonical email",
			email:          "a@b.com",
			wantIdentifier: "a@b.com",
			wantChannel:    enums.ChannelEmail,
		},
		{
			name:           "phone without plus",
			phone:          "94771234567",
			wantIdentifier: "94771234567",
			wantChannel:    enums.ChannelPhone,
		},
		{
			name:           "phone with plus",
			phone:          "+94771234567",
			wantIdentifier: "+94771234567",
			wantChannel:    enums.ChannelPhone,
		},
		{
			name:           "seven digits is the shortest phone",
			phone:          "1234567",
			wantIdentifier: "1234567",
			wantChannel:    enums.ChannelPhone,
		},
		{
			name:           "email wins when both are given",
			email:          "a@b.com",
			phone:          "94771234567",
			wantIdentifier: "a@b.com",
			wantChannel:    enums.ChannelEmail,
		},
		{
			name:    "neither given",
			wantErr: errors.ErrProvideEmailOrPhone,
		},
		{
			name:    "email without at sign",
			email:   "not-an-email",
			wantErr: errors.ErrInvalidEmail,
		},
		{
			name:    "email without domain",
			email:   "john@",
			wantErr: errors.ErrInvalidEmail,
		},
		{
			name:    "phone too short",
			phone:   "123456",
			wantErr: errors.ErrInvalidPhone,
		},
		{
			name:    "phone too long",
			phone:   "1234567890123456",
			wantErr: errors.ErrInvalidPhone,
		},
		{
			name:    "phone with letters",
			phone:   "12345abc9",
			wantErr: errors.ErrInvalidPhone,
		},
		{
			name:    "phone with plus in the middle",
			phone:   "1234+567",
			wantErr: errors.ErrInvalidPhone,
		},
	}

	for _, arg := range args {
		t.Run(arg.name, func(t *testing.T) {
			identifier, channel, err := validate.Identifier(arg.email, arg.phone)
			if err != arg.wantErr {
				t.Fatalf("error = %v, want %v", err, arg.wantErr)
			}
			if identifier != arg.wantIdentifier {
				t.Errorf("identifier = %q, want %q", identifier, arg.wantIdentifier)
			}
			if channel != arg.wantChannel {
				t.Errorf("channel = %q, want %q", channel, arg.wantChannel)
			}
		})
	}
}
