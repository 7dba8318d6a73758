package tour

import (
	"testing"
	"time"

	"aotearoa/internal/customer"
	"aotearoa/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture(t *testing.T) []Tour {
	t.Helper()

	south, err := New("NZ-South", 18, []string{"Queenstown", "Milford Sound"})
	require.NoError(t, err)
	south.Groups[testutil.Date(2024, time.March, 1)] = []customer.ID{5, 9}
	south.Groups[testutil.Date(2024, time.January, 15)] = []customer.ID{}

	north, err := New("NZ-North", 0, []string{"Rotorua", "Waitomo"})
	require.NoError(t, err)
	north.Groups[testutil.Date(2024, time.February, 2)] = []customer.ID{3}

	return []Tour{*south, *north}
}

func TestProjectOrder(t *testing.T) {
	groups := Project(catalogFixture(t))
	require.Len(t, groups, 3)

	// Primary key tour name, secondary key departure date.
	assert.Equal(t, "NZ-North", groups[0].TourName)
	assert.Equal(t, "NZ-South", groups[1].TourName)
	assert.Equal(t, testutil.Date(2024, time.January, 15), groups[1].Date)
	assert.Equal(t, "NZ-South", groups[2].TourName)
	assert.Equal(t, testutil.Date(2024, time.March, 1), groups[2].Date)

	// Each group carries its tour's restriction and member list.
	assert.Equal(t, 18, groups[2].AgeRestriction)
	assert.Equal(t, []customer.ID{5, 9}, groups[2].Members)
	assert.Empty(t, groups[1].Members)
}

func TestProjectIsStableAcrossCalls(t *testing.T) {
	catalog := catalogFixture(t)
	first := Project(catalog)
	second := Project(catalog)
	assert.Equal(t, first, second, "unchanged catalog projects identically")
}

func TestProjectReturnsDetachedMembers(t *testing.T) {
	catalog := catalogFixture(t)
	groups := Project(catalog)

	groups[2].Members[0] = 999
	again := Project(catalog)
	assert.Equal(t, customer.ID(5), again[2].Members[0],
		"mutating a projected snapshot never reaches the catalog")
}

func TestGroupContains(t *testing.T) {
	g := Group{Members: []customer.ID{5, 9}}
	assert.True(t, g.Contains(5))
	assert.False(t, g.Contains(7))
}
