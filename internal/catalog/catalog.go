// Package catalog seeds the session stores from a YAML catalog: either the
// embedded default data or an operator-supplied file.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"aotearoa/internal/customer"
	"aotearoa/internal/tour"
)

//go:embed seed.yaml
var embedded []byte

// dateLayout is the catalog file's date format. Interactive input uses
// dd/MM/yyyy; the catalog sticks to ISO dates so files sort and diff cleanly.
const dateLayout = "2006-01-02"

type customerEntry struct {
	ID        int    `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	BirthDate string `yaml:"birth_date"`
	Email     string `yaml:"email"`
}

type tourEntry struct {
	Name           string           `yaml:"name"`
	AgeRestriction int              `yaml:"age_restriction"`
	Itinerary      []string         `yaml:"itinerary"`
	Groups         map[string][]int `yaml:"groups"`
}

type file struct {
	Customers []customerEntry `yaml:"customers"`
	Tours     []tourEntry     `yaml:"tours"`
}

// Load returns the catalog bytes: the file at path when given, otherwise the
// embedded seed.
func Load(path string) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return data, nil
}

// Apply parses the catalog and populates both stores. Records go through the
// same constructors as interactive input, so a hand-edited catalog cannot
// smuggle in records that registration would reject.
func Apply(ctx context.Context, data []byte, customers *customer.InMemoryStore, tours *tour.InMemoryStore) error {
	var parsed file
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	for _, entry := range parsed.Customers {
		birth, err := time.Parse(dateLayout, entry.BirthDate)
		if err != nil {
			return fmt.Errorf("customer %d: birth date %q: %w", entry.ID, entry.BirthDate, err)
		}
		c, err := customer.New(entry.FirstName, entry.LastName, birth.UTC(), entry.Email)
		if err != nil {
			return fmt.Errorf("customer %d: %w", entry.ID, err)
		}
		c.ID = customer.ID(entry.ID)
		if err := customers.Insert(ctx, c); err != nil {
			return fmt.Errorf("customer %d: %w", entry.ID, err)
		}
	}

	for _, entry := range parsed.Tours {
		t, err := tour.New(entry.Name, entry.AgeRestriction, entry.Itinerary)
		if err != nil {
			return fmt.Errorf("tour %q: %w", entry.Name, err)
		}
		for date, members := range entry.Groups {
			departing, err := time.Parse(dateLayout, date)
			if err != nil {
				return fmt.Errorf("tour %q: departure date %q: %w", entry.Name, date, err)
			}
			ids := make([]customer.ID, 0, len(members))
			for _, id := range members {
				ok, err := customers.Exists(ctx, customer.ID(id))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("tour %q: group %s references unknown customer %d", entry.Name, date, id)
				}
				ids = append(ids, customer.ID(id))
			}
			t.Groups[departing.UTC()] = ids
		}
		if err := tours.Save(ctx, t); err != nil {
			return fmt.Errorf("tour %q: %w", entry.Name, err)
		}
	}
	return nil
}
