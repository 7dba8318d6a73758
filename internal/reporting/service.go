// Package reporting provides the read-only queries behind the listing menu
// entries. It returns plain structured data; rendering belongs to the
// presentation layer.
package reporting

import (
	"context"
	"sort"

	"aotearoa/internal/customer"
	"aotearoa/internal/tour"
	dErrors "aotearoa/pkg/domain-errors"
)

type CustomerStore interface {
	FindByID(ctx context.Context, id customer.ID) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
}

type TourStore interface {
	List(ctx context.Context) ([]tour.Tour, error)
	Groups(ctx context.Context) ([]tour.Group, error)
}

// GroupReport pairs a tour group with its members' full records, in
// enrollment order.
type GroupReport struct {
	Group   tour.Group
	Members []customer.Customer
}

// DestinationReport lists the tours whose itinerary covers a destination.
type DestinationReport struct {
	Destination string
	Tours       []string
}

// Service answers the read-only queries.
type Service struct {
	customers CustomerStore
	tours     TourStore
}

// New constructs a Service.
func New(customers CustomerStore, tours TourStore) *Service {
	return &Service{customers: customers, tours: tours}
}

// AllCustomers returns the full customer listing, ordered by id.
func (s *Service) AllCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customers.List(ctx)
}

// CustomersByGroup resolves every projected group's member ids to full
// records, in tour-name/date order. Groups with no members are included so
// the display can render its explicit "no customer" marker.
func (s *Service) CustomersByGroup(ctx context.Context) ([]GroupReport, error) {
	groups, err := s.tours.Groups(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]GroupReport, 0, len(groups))
	for _, g := range groups {
		report := GroupReport{Group: g, Members: make([]customer.Customer, 0, len(g.Members))}
		for _, id := range g.Members {
			c, err := s.customers.FindByID(ctx, id)
			if err != nil {
				// A member id with no customer record breaks the
				// membership invariant.
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "group member has no customer record")
			}
			report.Members = append(report.Members, *c)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Tours returns the catalog ordered by tour name, itineraries as stored.
func (s *Service) Tours(ctx context.Context) ([]tour.Tour, error) {
	return s.tours.List(ctx)
}

// Destinations returns the alphabetical union of all destinations, each with
// the sorted names of the tours that visit it.
func (s *Service) Destinations(ctx context.Context) ([]DestinationReport, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, err
	}

	covering := make(map[string][]string)
	for _, t := range tours {
		for _, destination := range t.Itinerary {
			covering[destination] = append(covering[destination], t.Name)
		}
	}

	names := make([]string, 0, len(covering))
	for destination := range covering {
		names = append(names, destination)
	}
	sort.Strings(names)

	reports := make([]DestinationReport, 0, len(names))
	for _, destination := range names {
		tourNames := covering[destination]
		sort.Strings(tourNames)
		reports = append(reports, DestinationReport{Destination: destination, Tours: tourNames})
	}
	return reports, nil
}
