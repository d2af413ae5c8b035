package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"booking-checkout/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email format")
	ErrEmptyName    = errs.New("contact name is required")
	ErrNameTooLong  = errs.New("contact name is too long")
	ErrEmailTooLong = errs.New("contact email is too long")
	ErrPhoneTooLong = errs.New("contact phone is too long")
)

// Limits stay below the payment provider's 500 character cap on metadata values.
const (
	maxNameLength  = 200
	maxEmailLength = 254
	maxPhoneLength = 50
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Info is the contact block captured by the booking form. Phone is optional.
type Info struct {
	name  string
	email string
	phone string
}

func NewInfo(name, email, phone string) (Info, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Info{}, ErrEmptyName
	}
	if email == "" {
		return Info{}, ErrInvalidEmail
	}
	return newInfo(name, email, phone)
}

// NewPartialInfo accepts any subset of fields; used where contact details are optional.
func NewPartialInfo(name, email, phone string) (Info, error) {
	return newInfo(strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone))
}

// newInfo expects trimmed input.
func newInfo(name, email, phone string) (Info, error) {
	if utf8.RuneCountInString(name) > maxNameLength {
		return Info{}, ErrNameTooLong
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return Info{}, ErrEmailTooLong
	}
	if email != "" && !emailRegex.MatchString(email) {
		return Info{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(phone) > maxPhoneLength {
		return Info{}, ErrPhoneTooLong
	}
	return Info{name: name, email: email, phone: phone}, nil
}

func (i Info) Name() string  { return i.name }
func (i Info) Email() string { return i.email }
func (i Info) Phone() string { return i.phone }

func (i Info) IsZero() bool {
	return i.name == "" && i.email == "" && i.phone == ""
}
