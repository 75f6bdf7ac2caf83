package dto

import "github.com/shopspring/decimal"

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Location    string          `json:"location"`
}

// UpdateItemRequest is a partial update; omitted fields keep their value.
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	DailyRate   *decimal.Decimal `json:"daily_rate"`
	Location    *string          `json:"location"`
	IsAvailable *bool            `json:"is_available"`
}

type CreateRentalRequest struct {
	ItemID    string `json:"item_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateRentalStatusRequest struct {
	Status string `json:"status"`
}

type CreatePaymentRequest struct {
	RentalID      string `json:"rental_id" binding:"required,uuid"`
	PaymentMethod string `json:"payment_method"`
}
