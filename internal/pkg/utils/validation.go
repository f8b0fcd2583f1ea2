package utils

import (
	"healthtrack-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("participant", validateParticipant)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateParticipant(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ParticipantTypeDoctor || value == constvars.ParticipantTypePatient
}
