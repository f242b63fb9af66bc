package booking

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError reports the first failing input field. Validation is strict:
// no partial draft is ever produced.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Contact struct {
	name  string
	email string
	phone string
}

// NewContact validates fields in declaration order and reports the first
// failure only.
func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return Contact{}, &FieldError{Field: "email", Reason: "must not be empty"}
	}
	if !emailRegex.MatchString(email) {
		return Contact{}, &FieldError{Field: "email", Reason: "malformed address"}
	}
	if phone == "" {
		return Contact{}, &FieldError{Field: "phone", Reason: "must not be empty"}
	}

	return Contact{name: name, email: email, phone: phone}, nil
}

// ReconstructContact trusts already-persisted data and skips validation.
func ReconstructContact(name, email, phone string) Contact {
	return Contact{name: name, email: email, phone: phone}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Participants struct {
	adults   int
	children int
}

func NewParticipants(adults, children int) (Participants, error) {
	if adults < 1 {
		return Participants{}, &FieldError{Field: "adults", Reason: "at least one adult required"}
	}
	if children < 0 {
		return Participants{}, &FieldError{Field: "children", Reason: "cannot be negative"}
	}
	return Participants{adults: adults, children: children}, nil
}

func ReconstructParticipants(adults, children int) Participants {
	return Participants{adults: adults, children: children}
}

func (p Participants) Adults() int   { return p.adults }
func (p Participants) Children() int { return p.children }

// Pricing is the computed breakdown submitted with a booking. All values
// stay unrounded floats; the UI rounds at display time.
type Pricing struct {
	BasePrice  float64
	AdultPrice float64
	ChildPrice float64
	TotalPrice float64
	Currency   string
}
