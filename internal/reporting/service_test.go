package reporting

import (
	"context"
	"testing"
	"time"

	"aotearoa/internal/customer"
	"aotearoa/internal/tour"
	"aotearoa/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStores(t *testing.T) (*customer.InMemoryStore, *tour.InMemoryStore) {
	t.Helper()
	ctx := context.Background()

	customers := customer.NewInMemoryStore()
	for id, name := range map[customer.ID][2]string{
		1: {"Aroha", "Ngata"},
		2: {"Tama", "Walker"},
	} {
		c, err := customer.New(name[0], name[1], testutil.Date(1990, time.May, 5), name[0]+"@example.com")
		require.NoError(t, err)
		c.ID = id
		require.NoError(t, customers.Insert(ctx, c))
	}

	tours := tour.NewInMemoryStore()

	a, err := tour.New("A", 0, []string{"X", "Y"})
	require.NoError(t, err)
	a.Groups[testutil.Date(2024, time.March, 1)] = []customer.ID{2, 1}
	require.NoError(t, tours.Save(ctx, a))

	b, err := tour.New("B", 0, []string{"Y"})
	require.NoError(t, err)
	b.Groups[testutil.Date(2024, time.April, 1)] = []customer.ID{}
	require.NoError(t, tours.Save(ctx, b))

	return customers, tours
}

func TestCustomersByGroup(t *testing.T) {
	customers, tours := seedStores(t)
	svc := New(customers, tours)

	reports, err := svc.CustomersByGroup(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Members resolve to full records in enrollment order.
	assert.Equal(t, "A", reports[0].Group.TourName)
	require.Len(t, reports[0].Members, 2)
	assert.Equal(t, "Tama", reports[0].Members[0].FirstName)
	assert.Equal(t, "Aroha", reports[0].Members[1].FirstName)

	// Empty groups are reported, not skipped.
	assert.Equal(t, "B", reports[1].Group.TourName)
	assert.Empty(t, reports[1].Members)
}

func TestCustomersByGroupBrokenMembership(t *testing.T) {
	customers, tours := seedStores(t)
	require.NoError(t, tours.AppendMember(context.Background(), "A",
		testutil.Date(2024, time.March, 1), 404))

	svc := New(customers, tours)
	_, err := svc.CustomersByGroup(context.Background())
	require.Error(t, err)
}

func TestDestinations(t *testing.T) {
	customers, tours := seedStores(t)
	svc := New(customers, tours)

	reports, err := svc.Destinations(context.Background())
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, DestinationReport{Destination: "X", Tours: []string{"A"}}, reports[0])
	assert.Equal(t, DestinationReport{Destination: "Y", Tours: []string{"A", "B"}}, reports[1])
}

func TestToursSortedByName(t *testing.T) {
	customers, tours := seedStores(t)
	svc := New(customers, tours)

	listed, err := svc.Tours(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "A", listed[0].Name)
	assert.Equal(t, []string{"X", "Y"}, listed[0].Itinerary, "itinerary order preserved as stored")
}
