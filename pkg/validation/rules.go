package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("stage", isKnownStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isKnownRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("priority", isKnownPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_format", isDateValid); err != nil {
		return err
	}
	return nil
}

// isKnownStage - одна из четырёх стадий рабочего процесса
func isKnownStage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "New", "In Progress", "Repaired", "Scrap":
		return true
	}
	return false
}

// isKnownRequestType - Corrective | Preventive
func isKnownRequestType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Corrective", "Preventive":
		return true
	}
	return false
}

// isKnownPriority - Low | Medium | High
func isKnownPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Low", "Medium", "High":
		return true
	}
	return false
}

// isDateValid - даты вида "2006-01-02"
func isDateValid(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
