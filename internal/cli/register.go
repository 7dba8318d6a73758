package cli

import (
	"context"
	"time"

	"aotearoa/internal/registration"
	dErrors "aotearoa/pkg/domain-errors"
)

// runRegistration drives the add-new-customer workflow. The four fields are
// collected in order, each re-prompting with its specific failure until
// accepted; :q at any prompt abandons the in-progress record and ends the
// workflow. Accepted records repeat the loop for another customer.
func (a *App) runRegistration(ctx context.Context) error {
	c := a.console

	for {
		firstName, cancelled, err := a.promptField("Please input first name (input :q to quit):\n", a.register.ValidateName)
		if err != nil || cancelled {
			return err
		}

		lastName, cancelled, err := a.promptField("Please input last name (input :q to quit):\n", a.register.ValidateName)
		if err != nil || cancelled {
			return err
		}

		birthDate, cancelled, err := a.promptBirthDate()
		if err != nil || cancelled {
			return err
		}

		email, cancelled, err := a.promptField("Please input email address (input :q to quit):\n", a.register.ValidateEmail)
		if err != nil || cancelled {
			return err
		}

		if _, err := a.register.Register(ctx, registration.Input{
			FirstName: firstName,
			LastName:  lastName,
			BirthDate: birthDate,
			Email:     email,
		}); err != nil {
			return err
		}

		c.Success("Customer has successfully added. Continue to add another customer.")
		c.Println()
	}
}

// promptField loops one text prompt until the validator accepts the input or
// the user cancels.
func (a *App) promptField(prompt string, validate func(string) (string, error)) (string, bool, error) {
	c := a.console
	for {
		input, err := c.ReadLine(prompt)
		if err != nil {
			return "", false, err
		}
		if isCancel(input, cancelRegistration) {
			return "", true, nil
		}

		accepted, err := validate(input)
		if err != nil {
			c.Warn(registrationMessage(err))
			continue
		}
		return accepted, false, nil
	}
}

func (a *App) promptBirthDate() (time.Time, bool, error) {
	c := a.console
	for {
		input, err := c.ReadLine("Please input birth date with format 'dd/MM/yyyy' (input :q to quit):\n")
		if err != nil {
			return time.Time{}, false, err
		}
		if isCancel(input, cancelRegistration) {
			return time.Time{}, true, nil
		}

		birth, err := a.register.ValidateBirthDate(input)
		if err != nil {
			c.Warn(registrationMessage(err))
			continue
		}
		return birth, false, nil
	}
}

// registrationMessage maps a field failure to the re-prompt wording.
func registrationMessage(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeEmptyInput:
		return "Can not be empty."
	case dErrors.CodeDateMalformed:
		return "Incorrect date format"
	case dErrors.CodeDateInFuture:
		return "Later than today"
	case dErrors.CodeDateTooOld:
		return "Earlier than 110 years ago"
	case dErrors.CodeEmailMalformed:
		return "Incorrect email format"
	default:
		return err.Error()
	}
}
