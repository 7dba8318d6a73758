package cli

import (
	"context"
	"strconv"
	"strings"

	"aotearoa/internal/customer"
	"aotearoa/internal/tour"
)

var customerWidths = []int{5, 15, 15, 15, 30}

// renderCustomerTable prints the shared customer listing used by the listing
// reports and the enrollment selection display.
func (a *App) renderCustomerTable(customers []customer.Customer) {
	c := a.console

	c.Println(rule(customerWidths))
	c.Println(c.colors.green(formatRow(customerWidths, "ID", "First Name", "Family Name", "Birth Date", "E-Mail")))
	c.Println(rule(customerWidths))

	if len(customers) == 0 {
		c.Println(formatRow([]int{92}, "No Customer"))
	}
	for _, record := range customers {
		c.Println(formatRow(customerWidths,
			strconv.Itoa(int(record.ID)),
			record.FirstName,
			record.LastName,
			record.BirthDate.Format(displayDate),
			record.Email,
		))
	}
	c.Println(rule(customerWidths))
}

// renderGroupTable prints the numbered tour-group selection list. The row
// numbers are the 1-based positions the enrollment prompt accepts.
func (a *App) renderGroupTable(groups []tour.Group) {
	c := a.console
	widths := []int{5, 33, 48}

	c.Println()
	c.Println(rule(widths))
	c.Println(c.colors.green(formatRow(widths, "No", "Tour Group", "Tour Date")))
	c.Println(rule(widths))
	for i, g := range groups {
		c.Println(formatRow(widths, strconv.Itoa(i+1), g.TourName, g.Date.Format(displayDate)))
	}
	c.Println(rule(widths))
}

func (a *App) listCustomers(ctx context.Context) error {
	customers, err := a.reports.AllCustomers(ctx)
	if err != nil {
		return err
	}
	a.console.Println()
	a.renderCustomerTable(customers)
	a.console.Pause()
	return nil
}

func (a *App) listCustomersByGroup(ctx context.Context) error {
	reports, err := a.reports.CustomersByGroup(ctx)
	if err != nil {
		return err
	}

	c := a.console
	headerWidths := []int{34, 15, 30}
	for _, report := range reports {
		c.Println()
		c.Println(rule(customerWidths))
		c.Println(formatRow([]int{5}, "Tour") + c.colors.cyan(continueRow(headerWidths,
			report.Group.TourName,
			report.Group.Date.Format("Jan 2006"),
			report.Group.Date.Format(displayDate),
		)))
		a.renderCustomerTable(report.Members)
	}
	c.Pause()
	return nil
}

func (a *App) listTourDetails(ctx context.Context) error {
	tours, err := a.reports.Tours(ctx)
	if err != nil {
		return err
	}

	c := a.console
	labelWidth := []int{12}
	wide := []int{90}
	for _, t := range tours {
		c.Println()
		c.Println(rule([]int{12, 90}))
		c.Println(formatRow(labelWidth, "Tour") + c.colors.cyan(continueRow(wide, t.Name)))
		c.Println(rule([]int{12, 90}))
		c.Println(formatRow(labelWidth, "Destinations") + c.colors.green(continueRow(wide, strings.Join(t.Itinerary, ", "))))
		c.Println(rule([]int{12, 90}))
	}
	c.Pause()
	return nil
}

func (a *App) listDestinations(ctx context.Context) error {
	reports, err := a.reports.Destinations(ctx)
	if err != nil {
		return err
	}

	c := a.console
	widths := []int{23, 66}
	c.Println()
	c.Println(rule(widths))
	c.Println(c.colors.green(formatRow(widths, "Destination", "Tour")))
	c.Println(rule(widths))
	for _, report := range reports {
		c.Println(formatRow(widths, report.Destination, strings.Join(report.Tours, ", ")))
	}
	c.Println(rule(widths))
	c.Pause()
	return nil
}
