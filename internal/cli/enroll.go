package cli

import (
	"context"

	"aotearoa/internal/customer"
	"aotearoa/internal/validation"
	dErrors "aotearoa/pkg/domain-errors"
)

// runEnrollment drives the add-customer-to-tour-group workflow: pick a
// customer, pick a group from the projected snapshot, and commit once every
// guard passes. Cancellation at either prompt aborts with nothing written.
func (a *App) runEnrollment(ctx context.Context) error {
	c := a.console

	customers, err := a.enroll.Customers(ctx)
	if err != nil {
		return err
	}
	c.Println()
	a.renderCustomerTable(customers)

	customerID, cancelled, err := a.promptCustomerID(ctx)
	if err != nil {
		return err
	}
	if cancelled {
		c.Pause()
		return nil
	}

	groups, err := a.enroll.Groups(ctx)
	if err != nil {
		return err
	}
	a.renderGroupTable(groups)

	for {
		input, err := c.ReadLine("Please input the tour group number (input c to cancel): ")
		if err != nil {
			return err
		}
		if isCancel(input, cancelEnrollment) {
			c.Pause()
			return nil
		}

		selection, err := validation.ParseSelection(input)
		if err != nil {
			c.Warn(enrollmentMessage(err))
			c.Println()
			continue
		}

		if err := a.enroll.Enroll(ctx, customerID, selection, groups); err != nil {
			if code := dErrors.CodeOf(err); code == dErrors.CodeOutOfRange ||
				code == dErrors.CodeDuplicateEnrollment ||
				code == dErrors.CodeAgeRestricted {
				c.Warn(enrollmentMessage(err))
				c.Println()
				continue
			}
			return err
		}
		break
	}

	c.Success("The customer has been added to the tour group successfully.")
	c.Pause()
	return nil
}

// promptCustomerID loops until the input is the cancel token or the id of a
// registered customer.
func (a *App) promptCustomerID(ctx context.Context) (customer.ID, bool, error) {
	c := a.console
	for {
		input, err := c.ReadLine("Please input a customer id (input c to cancel): ")
		if err != nil {
			return 0, false, err
		}
		if isCancel(input, cancelEnrollment) {
			return 0, true, nil
		}

		n, err := validation.ParseSelection(input)
		if err != nil {
			c.Warn(enrollmentMessage(err))
			c.Println()
			continue
		}

		id := customer.ID(n)
		exists, err := a.enroll.CustomerExists(ctx, id)
		if err != nil {
			return 0, false, err
		}
		if !exists {
			c.Warn("Customer ID not existing, please try again (input c to quit).")
			c.Println()
			continue
		}
		return id, false, nil
	}
}

// enrollmentMessage maps a guard failure to the re-prompt wording. The
// specific reason matters: the user fixes different mistakes differently.
func enrollmentMessage(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeEmptyInput, dErrors.CodeNotInteger:
		return "Please input an integer."
	case dErrors.CodeOutOfRange:
		return "Tour group number is not correct. Please try again (input c to cancel)."
	case dErrors.CodeDuplicateEnrollment:
		return "Customer already in this tour group. Please try again (input c to cancel)."
	case dErrors.CodeAgeRestricted:
		return "Customer is younger than the age restricted. Please try again (input c to cancel)."
	default:
		return err.Error()
	}
}
