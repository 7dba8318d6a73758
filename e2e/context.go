// Package e2e drives the menu application end to end with scripted terminal
// sessions, asserting on the rendered output and on the store state left
// behind.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"aotearoa/internal/audit"
	"aotearoa/internal/catalog"
	"aotearoa/internal/cli"
	"aotearoa/internal/customer"
	"aotearoa/internal/enrollment"
	"aotearoa/internal/registration"
	"aotearoa/internal/reporting"
	"aotearoa/internal/tour"
)

// sessionToday pins the clock so age checks against the seeded birth dates
// stay stable.
var sessionToday = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

// TestContext holds one scenario's stores, queued input, and captured output.
type TestContext struct {
	customers *customer.InMemoryStore
	tours     *tour.InMemoryStore
	events    *audit.InMemoryStore

	input  strings.Builder
	output bytes.Buffer
}

func NewTestContext() *TestContext {
	return &TestContext{}
}

// Reset discards all scenario state and reloads the built-in catalog.
func (tc *TestContext) Reset(ctx context.Context) error {
	tc.customers = customer.NewInMemoryStore()
	tc.tours = tour.NewInMemoryStore()
	tc.events = audit.NewInMemoryStore()
	tc.input.Reset()
	tc.output.Reset()

	data, err := catalog.Load("")
	if err != nil {
		return err
	}
	return catalog.Apply(ctx, data, tc.customers, tc.tours)
}

// QueueInput appends lines the session will consume, one per prompt.
func (tc *TestContext) QueueInput(lines string) {
	tc.input.WriteString(lines)
	if !strings.HasSuffix(lines, "\n") {
		tc.input.WriteString("\n")
	}
}

// RunSession executes the menu loop over the queued input and captures the
// output. Exhausted input ends the session the same way X does.
func (tc *TestContext) RunSession(ctx context.Context) error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := audit.NewPublisher(tc.events, log)
	clock := func() time.Time { return sessionToday }

	app := cli.NewApp(
		cli.NewConsole(strings.NewReader(tc.input.String()), &tc.output, false),
		enrollment.New(tc.customers, tc.tours,
			enrollment.WithLogger(log),
			enrollment.WithAuditPublisher(publisher),
			enrollment.WithClock(clock),
		),
		registration.New(tc.customers,
			registration.WithLogger(log),
			registration.WithAuditPublisher(publisher),
			registration.WithClock(clock),
		),
		reporting.New(tc.customers, tc.tours),
		log,
	)
	return app.Run(ctx)
}

// OutputContains reports whether the captured session output includes text.
func (tc *TestContext) OutputContains(text string) bool {
	return strings.Contains(tc.output.String(), text)
}

// Output returns the captured session output for failure messages.
func (tc *TestContext) Output() string {
	return tc.output.String()
}

// GroupMembers returns the member ids of the group identified by tour name
// and departure date (2006-01-02).
func (tc *TestContext) GroupMembers(ctx context.Context, tourName, date string) ([]customer.ID, error) {
	departing, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("parse departure date %q: %w", date, err)
	}
	groups, err := tc.tours.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.TourName == tourName && g.Date.Equal(tour.DateOnly(departing)) {
			return g.Members, nil
		}
	}
	return nil, fmt.Errorf("no group %q departing %s", tourName, date)
}

// FindCustomerByEmail scans the store for a registered customer.
func (tc *TestContext) FindCustomerByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	all, err := tc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Email == email {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("no customer with email %q", email)
}

// AuditEvents returns the emitted audit trail in append order.
func (tc *TestContext) AuditEvents(ctx context.Context) ([]audit.Event, error) {
	return tc.events.ListAll(ctx)
}
