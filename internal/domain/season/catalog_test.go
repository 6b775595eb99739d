package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremierLeagueCatalog_NewestFirst(t *testing.T) {
	catalog := PremierLeague()
	seasons := catalog.List()

	require.Len(t, seasons, 17)
	assert.Equal(t, Season{ID: 23614, Name: "2024/2025"}, seasons[0])
	assert.Equal(t, Season{ID: 6, Name: "2008/2009"}, seasons[len(seasons)-1])
	for i := 1; i < len(seasons); i++ {
		assert.Greater(t, seasons[i-1].Name, seasons[i].Name, "catalog must be newest first")
	}
}

func TestCatalog_ListIsStableAndIsolated(t *testing.T) {
	catalog := PremierLeague()

	first := catalog.List()
	first[0].HasData = true
	first[1].Name = "mutated"

	second := catalog.List()
	assert.False(t, second[0].HasData)
	assert.Equal(t, "2023/2024", second[1].Name)
	for _, s := range second {
		assert.False(t, s.HasData)
	}
}

func TestCatalog_Find(t *testing.T) {
	catalog := NewCatalog([]Season{{ID: 1, Name: "S1", HasData: true}, {ID: 2, Name: "S2"}})

	got, ok := catalog.Find(1)
	require.True(t, ok)
	assert.Equal(t, "S1", got.Name)
	assert.False(t, got.HasData)

	_, ok = catalog.Find(99)
	assert.False(t, ok)
	assert.Len(t, catalog.List(), 2)
}
