package dto

import (
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DailyRate   string `json:"daily_rate"`
	Location    string `json:"location"`
	IsAvailable bool   `json:"is_available"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type AvailabilityResponse struct {
	ItemID    string `json:"item_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type RentalResponse struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	ItemName    string `json:"item_name"`
	RenterID    string `json:"renter_id"`
	OwnerID     string `json:"owner_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalDays   int    `json:"total_days"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	RentalID      string `json:"rental_id"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type DashboardResponse struct {
	OwnedItemsCount        int    `json:"owned_items_count"`
	RentalsAsRenterCount   int    `json:"rentals_as_renter_count"`
	RentalsAsOwnerCount    int    `json:"rentals_as_owner_count"`
	TotalEarnings          string `json:"total_earnings"`
	TotalSpending          string `json:"total_spending"`
	PendingRentalsAsOwner  int    `json:"pending_rentals_as_owner"`
	PendingRentalsAsRenter int    `json:"pending_rentals_as_renter"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		Address:        u.Address,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		DailyRate:   i.DailyRate.StringFixed(2),
		Location:    i.Location,
		IsAvailable: i.IsAvailable,
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   i.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRentalResponse(r *domain.Rental) RentalResponse {
	return RentalResponse{
		ID:          r.ID,
		ItemID:      r.ItemID,
		ItemName:    r.ItemName,
		RenterID:    r.RenterID,
		OwnerID:     r.OwnerID,
		StartDate:   r.StartDate.Format(domain.DateLayout),
		EndDate:     r.EndDate.Format(domain.DateLayout),
		TotalDays:   r.TotalDays,
		TotalAmount: r.TotalAmount.StringFixed(2),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRentalResponses(rentals []*domain.Rental) []RentalResponse {
	resp := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		resp = append(resp, ToRentalResponse(r))
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		RentalID:      p.RentalID,
		Amount:        p.Amount.StringFixed(2),
		PaymentMethod: string(p.Method),
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		OwnedItemsCount:        s.OwnedItemsCount,
		RentalsAsRenterCount:   s.RentalsAsRenterCount,
		RentalsAsOwnerCount:    s.RentalsAsOwnerCount,
		TotalEarnings:          s.TotalEarnings.StringFixed(2),
		TotalSpending:          s.TotalSpending.StringFixed(2),
		PendingRentalsAsOwner:  s.PendingRentalsAsOwner,
		PendingRentalsAsRenter: s.PendingRentalsAsRenter,
	}
}
