package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("asset_status", validateAssetStatus)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAssetStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	validStatuses := []string{"available", "assigned", "maintenance", "retired", "lost"}

	for _, validStatus := range validStatuses {
		if status == validStatus {
			return true
		}
	}
	return false
}

func StringPtr(s string) *string {
	return &s
}
