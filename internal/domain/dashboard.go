package domain

import "github.com/shopspring/decimal"

type DashboardStats struct {
	OwnedItemsCount        int             `json:"owned_items_count"`
	RentalsAsRenterCount   int             `json:"rentals_as_renter_count"`
	RentalsAsOwnerCount    int             `json:"rentals_as_owner_count"`
	TotalEarnings          decimal.Decimal `json:"total_earnings"`
	TotalSpending          decimal.Decimal `json:"total_spending"`
	PendingRentalsAsOwner  int             `json:"pending_rentals_as_owner"`
	PendingRentalsAsRenter int             `json:"pending_rentals_as_renter"`
}
