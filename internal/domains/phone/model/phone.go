package model

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Phone is a contact number attached to a user. A user has at most one
// default phone; the flag is maintained transactionally by the repository.
type Phone struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Number    string    `json:"number" db:"number"`
	Label     string    `json:"label" db:"label"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

var phonePattern = regexp.MustCompile(`^(0|\+84)\d{9}$`)

// NormalizePhoneNumber strips spaces, dots and dashes from a raw number.
func NormalizePhoneNumber(raw string) string {
	replacer := strings.NewReplacer(" ", "", ".", "", "-", "")
	return replacer.Replace(strings.TrimSpace(raw))
}

// CreatePhoneRequest adds a phone number to the authenticated user.
type CreatePhoneRequest struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

func (r CreatePhoneRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Number, validation.Required, validation.By(func(v interface{}) error {
			s, _ := v.(string)
			if !phonePattern.MatchString(NormalizePhoneNumber(s)) {
				return ErrInvalidPhoneNumber
			}
			return nil
		})),
		validation.Field(&r.Label, validation.Length(0, 50)),
	)
}
