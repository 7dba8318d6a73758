package customer

import (
	"strings"
	"time"

	dErrors "aotearoa/pkg/domain-errors"
	"aotearoa/pkg/email"
)

// ID is the generated numeric customer identifier. Customers are the only
// records with a synthetic key; tours use their name.
type ID int

// Customer is an immutable registration record. Once created it is never
// mutated or deleted; identity is the generated ID.
type Customer struct {
	ID        ID
	FirstName string
	LastName  string
	BirthDate time.Time
	Email     string
}

// New validates field invariants and builds an unsaved customer. The store
// assigns the ID on save.
func New(firstName, lastName string, birthDate time.Time, address string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	address = strings.TrimSpace(address)

	if firstName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "first name cannot be empty")
	}
	if lastName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "last name cannot be empty")
	}
	if birthDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "birth date cannot be zero")
	}
	if !email.IsValid(address) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email address is malformed")
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
		Email:     address,
	}, nil
}

// Age returns the customer's age in completed years as of today: the year
// difference, less one when today's (month, day) precedes the birthday's.
func (c Customer) Age(today time.Time) int {
	age := today.Year() - c.BirthDate.Year()
	if today.Month() < c.BirthDate.Month() ||
		(today.Month() == c.BirthDate.Month() && today.Day() < c.BirthDate.Day()) {
		age--
	}
	return age
}

// FullName joins the name fields for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
