package utils

import (
	"regexp"

	"agenda-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("date_iso", validateDateISO)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleAdmin || value == constvars.RoleEmpleado
}

func validateDateISO(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateISO).MatchString(fl.Field().String())
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}
