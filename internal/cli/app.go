// Package cli renders the interactive menu application. It owns all prompts,
// colour, and table formatting; the domain services behind it expose plain
// structured data and know nothing about the terminal.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"aotearoa/internal/enrollment"
	"aotearoa/internal/registration"
	"aotearoa/internal/reporting"
)

// displayDate is how departure and birth dates render in tables.
const displayDate = "02 Jan 2006"

// App ties the menu loop to the workflow services.
type App struct {
	console  *Console
	enroll   *enrollment.Service
	register *registration.Service
	reports  *reporting.Service
	logger   *slog.Logger
}

// NewApp constructs the terminal application. A nil logger discards.
func NewApp(console *Console, enroll *enrollment.Service, register *registration.Service, reports *reporting.Service, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		console:  console,
		enroll:   enroll,
		register: register,
		reports:  reports,
		logger:   logger,
	}
}

// Run drives the menu until the user exits with X or the input ends. The
// exhausted-input case matters for scripted sessions, which would otherwise
// spin on a closed reader.
func (a *App) Run(ctx context.Context) error {
	a.logger.DebugContext(ctx, "menu session started")
	for {
		a.printMenu()
		choice, err := a.console.ReadLine("Please enter menu choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch normalizeToken(choice) {
		case "1":
			err = a.listCustomers(ctx)
		case "2":
			err = a.listCustomersByGroup(ctx)
		case "3":
			err = a.listTourDetails(ctx)
		case "4":
			err = a.listDestinations(ctx)
		case "5":
			err = a.runEnrollment(ctx)
		case "6":
			err = a.runRegistration(ctx)
		case "X":
			a.console.Println()
			a.console.Println("=== Thank you for using the AOTEAROA TOURS MANAGEMENT SYSTEM! ===")
			return nil
		default:
			a.console.Println()
			a.console.Warn("*** Invalid response, please try again (enter 1-6 or X)")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		a.console.Println()
	}
}

func (a *App) printMenu() {
	c := a.console
	c.Println(c.colors.blue("==== WELCOME TO AOTEAROA TOURS MANAGEMENT SYSTEM ===="))
	c.Println(" 1 - List Customers")
	c.Println(" 2 - List Customers By Tour Groups")
	c.Println(" 3 - List Tours and their details")
	c.Println(" 4 - List all Tours that visit Destinations")
	c.Println(" 5 - Add Existing Customer to Tour Group")
	c.Println(" 6 - Add New Customer")
	c.Println(" X - eXit (stops the program)")
}
