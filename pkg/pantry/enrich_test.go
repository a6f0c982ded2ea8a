package pantry

import (
	"testing"
	"time"

	"smart-grocery-api/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 45, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntilExpiry(time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 1, DaysUntilExpiry(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 3, DaysUntilExpiry(time.Date(2026, 9, 2, 23, 59, 0, 0, time.UTC), now))
	assert.Equal(t, -2, DaysUntilExpiry(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), now))
}

func TestEnrichExpiringSoon(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	item := &entities.PantryItem{
		Name:           "Milk",
		Quantity:       floatPtr(1),
		ExpirationDate: timePtr(now.AddDate(0, 0, 2)),
	}

	enrichment := Enrich(item, 3, now)
	require.NotNil(t, enrichment.DaysUntilExpiry)
	assert.Equal(t, 2, *enrichment.DaysUntilExpiry)
	assert.True(t, enrichment.IsExpiringSoon)
	assert.True(t, enrichment.IsLowStock)
}

func TestEnrichOutsideWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	item := &entities.PantryItem{
		Name:           "Eggs",
		Quantity:       floatPtr(12),
		ExpirationDate: timePtr(now.AddDate(0, 0, 14)),
	}

	enrichment := Enrich(item, 3, now)
	require.NotNil(t, enrichment.DaysUntilExpiry)
	assert.Equal(t, 14, *enrichment.DaysUntilExpiry)
	assert.False(t, enrichment.IsExpiringSoon)
	assert.False(t, enrichment.IsLowStock)
}

func TestEnrichExpiredItemStaysExpiringSoon(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	item := &entities.PantryItem{
		Name:           "Yogurt",
		ExpirationDate: timePtr(now.AddDate(0, 0, -4)),
	}

	enrichment := Enrich(item, 3, now)
	require.NotNil(t, enrichment.DaysUntilExpiry)
	assert.Equal(t, -4, *enrichment.DaysUntilExpiry)
	assert.True(t, enrichment.IsExpiringSoon)
}

func TestEnrichNoExpirationNoQuantity(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	enrichment := Enrich(&entities.PantryItem{Name: "Salt"}, 3, now)
	assert.Nil(t, enrichment.DaysUntilExpiry)
	assert.False(t, enrichment.IsExpiringSoon)
	assert.False(t, enrichment.IsLowStock)
}

func TestEnrichLowStockBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	atThreshold := Enrich(&entities.PantryItem{Quantity: floatPtr(2)}, 3, now)
	assert.True(t, atThreshold.IsLowStock)

	aboveThreshold := Enrich(&entities.PantryItem{Quantity: floatPtr(3)}, 3, now)
	assert.False(t, aboveThreshold.IsLowStock)

	zero := Enrich(&entities.PantryItem{Quantity: floatPtr(0)}, 3, now)
	assert.True(t, zero.IsLowStock)
}
