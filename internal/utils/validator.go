package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors        []ValidationErrorDetail `json:"errors"`
	Documentation string                  `json:"documentation"`
}

const DocumentationLink = "/swagger/index.html"

// BindAndValidate binds the JSON body to obj and validates it.
// On failure it writes a 400 response with per-field details and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		writeValidationError(c, obj, err)
		return false
	}
	return true
}

// BindQueryAndValidate is BindAndValidate for query-string parameters.
func BindQueryAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		writeValidationError(c, obj, err)
		return false
	}
	return true
}

func writeValidationError(c *gin.Context, obj interface{}, err error) {
	validationErrors := DescribeValidationError(obj, err)

	response := Response{
		Status:  http.StatusBadRequest,
		Message: validationErrors[0].Message,
		Data: ValidationErrorData{
			Errors:        validationErrors,
			Documentation: DocumentationLink,
		},
	}
	c.JSON(http.StatusBadRequest, response)
}

// DescribeValidationError turns a binding error into field details.
func DescribeValidationError(obj interface{}, err error) []ValidationErrorDetail {
	var details []ValidationErrorDetail

	var errs validator.ValidationErrors
	var jsonErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &errs):
		for _, e := range errs {
			field := getJSONTagName(obj, e.StructField())
			detail := ValidationErrorDetail{
				Field:    field,
				Message:  fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag()),
				Expected: e.Param(),
				Received: e.Value(),
			}
			if detail.Expected == "" {
				detail.Expected = e.Tag()
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", field)
				detail.Expected = "not null"
			case "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s", field, e.Param())
			case "max":
				detail.Message = fmt.Sprintf("Field '%s' must be at most %s", field, e.Param())
			case "gte", "lte":
				detail.Message = fmt.Sprintf("Field '%s' is out of range", field)
			case "oneof":
				detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
			}

			details = append(details, detail)
		}
	case errors.As(err, &jsonErr):
		details = append(details, ValidationErrorDetail{
			Field:    jsonErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", jsonErr.Field),
			Expected: jsonErr.Type.String(),
			Received: jsonErr.Value,
		})
	default:
		details = append(details, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request parameters",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}
	return details
}

// getJSONTagName maps a struct field to its json or form tag.
func getJSONTagName(obj interface{}, fieldName string) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fieldName
	}
	if f, ok := t.FieldByName(fieldName); ok {
		for _, key := range []string{"json", "form"} {
			if tag := strings.Split(f.Tag.Get(key), ",")[0]; tag != "" && tag != "-" {
				return tag
			}
		}
	}
	return fieldName
}
