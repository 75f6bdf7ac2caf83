package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/RentalShop/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
