package middleware

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
)

var setupValidatorOnce sync.Once

// SetupValidator makes gin's validator report fields by their JSON (or form)
// name and registers the notblank tag. It must run before any request DTO
// using notblank is bound.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return ""
}

// notBlank rejects strings made only of whitespace. "required" alone lets
// "   " through as a property address or entity name.
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

// FormatValidationErrors turns validator errors into the error envelope with
// one detail per failing field.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail
	if verrs, ok := err.(validator.ValidationErrors); ok {
		details = make([]dto.ValidationDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
				Tag:     fe.Tag(),
			})
		}
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError answers 400 with the formatted validation errors.
func HandleValidationError(c *gin.Context, err error) {
	requestID := c.GetString(RequestIDKey)
	if requestID == "" {
		requestID = c.GetHeader(requestIDHeader)
	}
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

var fixedMessages = map[string]string{
	"required": "This field is required",
	"notblank": "This field cannot be blank",
	"email":    "Invalid email format",
	"uuid":     "Invalid UUID format",
	"url":      "Invalid URL format",
	"numeric":  "Must be numeric",
	"datetime": "Invalid date format",
}

var paramMessages = map[string]string{
	"oneof": "Must be one of: %s",
	"gte":   "Must be greater than or equal to %s",
	"lte":   "Must be less than or equal to %s",
	"gt":    "Must be greater than %s",
	"lt":    "Must be less than %s",
	"len":   "Must be exactly %s characters",
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	if format, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Param())
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "min":
		return "Must be at least " + fe.Param() + unit
	case "max":
		return "Must be at most " + fe.Param() + unit
	}
	return "Invalid value"
}
