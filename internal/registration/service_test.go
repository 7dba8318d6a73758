package registration

import (
	"context"
	"testing"
	"time"

	"aotearoa/internal/audit"
	"aotearoa/internal/customer"
	dErrors "aotearoa/pkg/domain-errors"
	"aotearoa/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *customer.InMemoryStore, *audit.InMemoryStore) {
	t.Helper()
	store := customer.NewInMemoryStore()
	trail := audit.NewInMemoryStore()
	svc := New(store,
		WithClock(func() time.Time { return testutil.Date(2024, time.June, 1) }),
		WithAuditPublisher(audit.NewPublisher(trail, nil)),
	)
	return svc, store, trail
}

func TestFieldValidation(t *testing.T) {
	svc, _, _ := newService(t)

	testutil.Given(t, "a name field", func(t *testing.T) {
		name, err := svc.ValidateName("  Hine ")
		require.NoError(t, err)
		assert.Equal(t, "Hine", name)

		_, err = svc.ValidateName("   ")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeEmptyInput))
	})

	testutil.Given(t, "a birth date field", func(t *testing.T) {
		birth, err := svc.ValidateBirthDate("15/06/1990")
		require.NoError(t, err)
		assert.Equal(t, testutil.Date(1990, time.June, 15), birth)

		_, err = svc.ValidateBirthDate("15/06/2090")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeDateInFuture))
	})

	testutil.Given(t, "an email field", func(t *testing.T) {
		addr, err := svc.ValidateEmail(" hine@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "hine@example.com", addr)

		_, err = svc.ValidateEmail("hine@example")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeEmailMalformed))

		_, err = svc.ValidateEmail("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeEmptyInput))
	})
}

func TestRegisterAppendsWithGeneratedID(t *testing.T) {
	svc, store, trail := newService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, Input{
		FirstName: "Hine",
		LastName:  "Kawharu",
		BirthDate: testutil.Date(1990, time.June, 15),
		Email:     "hine@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID(1), first.ID)

	second, err := svc.Register(ctx, Input{
		FirstName: "Tane",
		LastName:  "Mahuta",
		BirthDate: testutil.Date(1985, time.April, 2),
		Email:     "tane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID(2), second.ID, "each registration gets a fresh id")

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	events, err := trail.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionCustomerRegistered, events[0].Action)
	assert.Equal(t, "hine@example.com", events[0].Subject)
}

func TestRegisterRejectsInvalidRecord(t *testing.T) {
	svc, store, _ := newService(t)

	_, err := svc.Register(context.Background(), Input{
		FirstName: "",
		LastName:  "Kawharu",
		BirthDate: testutil.Date(1990, time.June, 15),
		Email:     "hine@example.com",
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is appended on a rejected record")
}
