package validator

import (
	"log"

	"lawlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags backed by
// models/statuses.go. Registration failure is a startup error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-consultation-status", validateConsultationStatus)
	mustRegister("is-consultation-mode", validateConsultationMode)
	mustRegister("is-payment-mode", validatePaymentMode)
}

func validateConsultationStatus(fl validator.FieldLevel) bool {
	return models.ValidConsultationStatus(models.ConsultationStatus(fl.Field().String()))
}

func validateConsultationMode(fl validator.FieldLevel) bool {
	return models.ValidConsultationMode(models.ConsultationMode(fl.Field().String()))
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	return models.ValidPaymentMode(models.PaymentMode(fl.Field().String()))
}
