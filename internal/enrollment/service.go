// Package enrollment orchestrates adding an existing customer to a tour
// group: customer lookup, group selection against a projected snapshot, the
// three enrollment guards, and the commit into the catalog.
package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"aotearoa/internal/audit"
	"aotearoa/internal/customer"
	"aotearoa/internal/tour"
	dErrors "aotearoa/pkg/domain-errors"
)

type CustomerStore interface {
	FindByID(ctx context.Context, id customer.ID) (*customer.Customer, error)
	Exists(ctx context.Context, id customer.ID) (bool, error)
	List(ctx context.Context) ([]customer.Customer, error)
}

type TourStore interface {
	Groups(ctx context.Context) ([]tour.Group, error)
	AppendMember(ctx context.Context, tourName string, date time.Time, id customer.ID) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service runs the enrollment workflow's domain side. The interactive loop
// lives in the presentation layer; everything here is prompt-free.
type Service struct {
	customers CustomerStore
	tours     TourStore
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

// WithClock fixes the service's notion of today for age checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(customers CustomerStore, tours TourStore, opts ...Option) *Service {
	s := &Service{customers: customers, tours: tours, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Customers returns the current customer listing for the selection display.
func (s *Service) Customers(ctx context.Context) ([]customer.Customer, error) {
	return s.customers.List(ctx)
}

// CustomerExists is the first workflow guard: the typed id must reference a
// registered customer.
func (s *Service) CustomerExists(ctx context.Context, id customer.ID) (bool, error) {
	return s.customers.Exists(ctx, id)
}

// Groups projects the catalog snapshot the user will pick from. The snapshot
// must be re-projected after every commit; positions in it are the 1-based
// numbers shown on screen.
func (s *Service) Groups(ctx context.Context) ([]tour.Group, error) {
	return s.tours.Groups(ctx)
}

// Enroll checks the selected group against the guards in their fixed order —
// selection in range, customer not already a member, customer old enough —
// short-circuiting on the first failure, then appends the customer to the
// group. Nothing is written unless every guard passes.
func (s *Service) Enroll(ctx context.Context, customerID customer.ID, selection int, groups []tour.Group) error {
	if selection < 1 || selection > len(groups) {
		return dErrors.New(dErrors.CodeOutOfRange, "tour group number is not correct")
	}
	group := groups[selection-1]

	if group.Contains(customerID) {
		return dErrors.New(dErrors.CodeDuplicateEnrollment, "customer already in this tour group")
	}

	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeNotFound, "customer not found")
	}
	if c.Age(s.now()) < group.AgeRestriction {
		return dErrors.New(dErrors.CodeAgeRestricted, "customer is younger than the age restriction")
	}

	if err := s.tours.AppendMember(ctx, group.TourName, group.Date, customerID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "enrollment commit failed")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "customer enrolled",
			"customer_id", int(customerID),
			"tour", group.TourName,
			"date", group.Date.Format("2006-01-02"),
		)
	}
	if s.audit != nil {
		subject := fmt.Sprintf("%s/%s", group.TourName, group.Date.Format("2006-01-02"))
		if err := s.audit.Emit(ctx, audit.Event{
			Action:     audit.ActionCustomerEnrolled,
			CustomerID: customerID,
			Subject:    subject,
		}); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "audit emit failed", "error", err)
		}
	}
	return nil
}
