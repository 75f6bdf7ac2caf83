package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest money value the store holds (NUMERIC(12,2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

type Item struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Location    string          `json:"location"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateItemInput struct {
	OwnerID     string          `validate:"required,uuid"`
	Name        string          `validate:"required,max=200"`
	Description string
	Category    string          `validate:"required,max=50"`
	DailyRate   decimal.Decimal
	Location    string          `validate:"max=200"`
}

// UpdateItemInput carries a partial update; nil fields are left untouched.
type UpdateItemInput struct {
	ItemID      string  `validate:"required,uuid"`
	ActorID     string  `validate:"required,uuid"`
	Name        *string `validate:"omitempty,min=1,max=200"`
	Description *string
	Category    *string `validate:"omitempty,min=1,max=50"`
	DailyRate   *decimal.Decimal
	Location    *string `validate:"omitempty,max=200"`
	IsAvailable *bool
}

type ItemFilter struct {
	Category string
	Search   string
	OwnerID  string `validate:"omitempty,uuid"`
}

// Apply copies the set fields of in onto the item.
func (i *Item) Apply(in UpdateItemInput) {
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Description != nil {
		i.Description = *in.Description
	}
	if in.Category != nil {
		i.Category = *in.Category
	}
	if in.DailyRate != nil {
		i.DailyRate = *in.DailyRate
	}
	if in.Location != nil {
		i.Location = *in.Location
	}
	if in.IsAvailable != nil {
		i.IsAvailable = *in.IsAvailable
	}
}
