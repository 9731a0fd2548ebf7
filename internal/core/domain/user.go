package domain

import (
	"regexp"
	"time"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,15}$`)

type User struct {
	ID                int64
	Username          string `validate:"required,min=3,max=15"`
	EncryptedPassword string `validate:"required"`
	AvatarURL         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidUsername reports whether the name is 3-15 word characters.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}
