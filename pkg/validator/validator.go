package validator

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rokto.app/bloodlink/internal/model"
)

// RegisterCustomValidations hooks domain rules into gin's binding validator.
// Call once at server startup.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
			return model.ValidBloodGroup(fl.Field().String())
		})
	}
}

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "bloodgroup":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(model.BloodGroups, " "))
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Name":          "Name",
		"Email":         "Email",
		"Password":      "Password",
		"BloodGroup":    "Blood group",
		"District":      "District",
		"Upazila":       "Upazila",
		"RecipientName": "Recipient name",
		"Hospital":      "Hospital name",
		"Street":        "Street address",
		"DonationDate":  "Donation date",
		"DonationTime":  "Donation time",
		"Title":         "Title",
		"Content":       "Content",
		"Amount":        "Amount",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
