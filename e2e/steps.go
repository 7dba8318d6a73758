package e2e

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"aotearoa/internal/audit"
	"aotearoa/internal/customer"
)

// RegisterSteps binds all step definitions for the menu application.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, tc.Reset(ctx)
	})

	steps := &sessionSteps{tc: tc}

	ctx.Step(`^I enter:$`, steps.enterLines)
	ctx.Step(`^the session runs to completion$`, steps.runSession)

	ctx.Step(`^the output contains "([^"]*)"$`, steps.outputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, steps.outputDoesNotContain)
	ctx.Step(`^tour "([^"]*)" group departing "([^"]*)" has members "([^"]*)"$`, steps.groupHasMembers)
	ctx.Step(`^tour "([^"]*)" group departing "([^"]*)" has no members$`, steps.groupHasNoMembers)
	ctx.Step(`^a customer with email "([^"]*)" is registered as "([^"]*)"$`, steps.customerRegistered)
	ctx.Step(`^no customer with email "([^"]*)" is registered$`, steps.customerNotRegistered)
	ctx.Step(`^an audit event "([^"]*)" was recorded for customer (\d+)$`, steps.auditEventRecorded)
	ctx.Step(`^no audit events were recorded$`, steps.noAuditEvents)
}

type sessionSteps struct {
	tc *TestContext
}

func (s *sessionSteps) enterLines(doc *godog.DocString) error {
	s.tc.QueueInput(doc.Content)
	return nil
}

func (s *sessionSteps) runSession(ctx context.Context) error {
	return s.tc.RunSession(ctx)
}

func (s *sessionSteps) outputContains(text string) error {
	if !s.tc.OutputContains(text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, s.tc.Output())
	}
	return nil
}

func (s *sessionSteps) outputDoesNotContain(text string) error {
	if s.tc.OutputContains(text) {
		return fmt.Errorf("output unexpectedly contains %q", text)
	}
	return nil
}

func (s *sessionSteps) groupHasMembers(ctx context.Context, tourName, date, members string) error {
	got, err := s.tc.GroupMembers(ctx, tourName, date)
	if err != nil {
		return err
	}
	want, err := parseMemberList(members)
	if err != nil {
		return err
	}
	if len(got) != len(want) {
		return fmt.Errorf("group %q departing %s: want members %v, got %v", tourName, date, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("group %q departing %s: want members %v, got %v", tourName, date, want, got)
		}
	}
	return nil
}

func (s *sessionSteps) groupHasNoMembers(ctx context.Context, tourName, date string) error {
	got, err := s.tc.GroupMembers(ctx, tourName, date)
	if err != nil {
		return err
	}
	if len(got) != 0 {
		return fmt.Errorf("group %q departing %s: want no members, got %v", tourName, date, got)
	}
	return nil
}

func (s *sessionSteps) customerRegistered(ctx context.Context, email, fullName string) error {
	c, err := s.tc.FindCustomerByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c.FullName() != fullName {
		return fmt.Errorf("customer %q: want name %q, got %q", email, fullName, c.FullName())
	}
	return nil
}

func (s *sessionSteps) customerNotRegistered(ctx context.Context, email string) error {
	if _, err := s.tc.FindCustomerByEmail(ctx, email); err == nil {
		return fmt.Errorf("customer %q unexpectedly registered", email)
	}
	return nil
}

func (s *sessionSteps) auditEventRecorded(ctx context.Context, action string, customerID int) error {
	events, err := s.tc.AuditEvents(ctx)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.Action == audit.Action(action) && e.CustomerID == customer.ID(customerID) {
			return nil
		}
	}
	return fmt.Errorf("no %q event for customer %d in %d events", action, customerID, len(events))
}

func (s *sessionSteps) noAuditEvents(ctx context.Context) error {
	events, err := s.tc.AuditEvents(ctx)
	if err != nil {
		return err
	}
	if len(events) != 0 {
		return fmt.Errorf("want no audit events, got %d", len(events))
	}
	return nil
}

func parseMemberList(members string) ([]customer.ID, error) {
	parts := strings.Split(members, ",")
	ids := make([]customer.ID, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("member list %q: %w", members, err)
		}
		ids = append(ids, customer.ID(n))
	}
	return ids, nil
}
