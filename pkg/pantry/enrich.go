package pantry

import (
	"math"
	"time"

	"smart-grocery-api/entities"
)

// LowStockThreshold is the quantity at or below which an item counts as
// low stock. Items without a quantity are never low stock.
const LowStockThreshold = 2

// Enrichment holds the derived fields computed for a pantry item. These are
// never persisted; they are recomputed on every read so they can not go
// stale against quantity or expiration edits.
type Enrichment struct {
	DaysUntilExpiry *int
	IsExpiringSoon  bool
	IsLowStock      bool
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntilExpiry returns the number of calendar days between now and the
// expiration date. Both timestamps are normalized to midnight before
// subtracting, so an item expiring today yields 0 and an already expired
// item yields a negative count.
func DaysUntilExpiry(expirationDate, now time.Time) int {
	diff := midnight(expirationDate).Sub(midnight(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// Enrich computes the derived fields for a pantry item against the user's
// reminder window. It is the single source of truth for "expiring soon" and
// "low stock": every read path goes through it so the list, expiring and
// low-stock views stay numerically consistent.
func Enrich(item *entities.PantryItem, reminderWindowDays int, now time.Time) Enrichment {
	var enrichment Enrichment

	if item.ExpirationDate != nil {
		days := DaysUntilExpiry(*item.ExpirationDate, now)
		enrichment.DaysUntilExpiry = &days
		enrichment.IsExpiringSoon = days <= reminderWindowDays
	}

	if item.Quantity != nil {
		enrichment.IsLowStock = *item.Quantity <= LowStockThreshold
	}

	return enrichment
}
