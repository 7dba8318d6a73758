// Package registration validates the four prompted fields and appends new
// customer records with a generated identifier.
package registration

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aotearoa/internal/audit"
	"aotearoa/internal/customer"
	"aotearoa/internal/validation"
	dErrors "aotearoa/pkg/domain-errors"
	"aotearoa/pkg/email"
)

type CustomerStore interface {
	Create(ctx context.Context, c *customer.Customer) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Input carries the four accepted registration fields.
type Input struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	Email     string
}

// Service validates registration fields and commits accepted records.
type Service struct {
	customers CustomerStore
	logger    *slog.Logger
	audit     AuditPublisher
	now       func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

// WithClock fixes the service's notion of today for birth-date range checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(customers CustomerStore, opts ...Option) *Service {
	s := &Service{customers: customers, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateName accepts any non-empty text and returns it trimmed.
func (s *Service) ValidateName(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", dErrors.New(dErrors.CodeEmptyInput, "can not be empty")
	}
	return input, nil
}

// ValidateBirthDate parses and range-checks a dd/MM/yyyy birth date.
func (s *Service) ValidateBirthDate(input string) (time.Time, error) {
	return validation.ParseBirthDate(input, s.now())
}

// ValidateEmail checks the loose user@host.tld shape.
func (s *Service) ValidateEmail(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", dErrors.New(dErrors.CodeEmptyInput, "can not be empty")
	}
	if !email.IsValid(input) {
		return "", dErrors.New(dErrors.CodeEmailMalformed, "incorrect email format")
	}
	return input, nil
}

// Register builds the customer record from accepted fields and appends it
// with a generated id.
func (s *Service) Register(ctx context.Context, in Input) (*customer.Customer, error) {
	c, err := customer.New(in.FirstName, in.LastName, in.BirthDate, in.Email)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "customer create failed")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "customer registered",
			"customer_id", int(c.ID),
			"email", c.Email,
		)
	}
	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			Action:     audit.ActionCustomerRegistered,
			CustomerID: c.ID,
			Subject:    c.Email,
		}); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "audit emit failed", "error", err)
		}
	}
	return c, nil
}
