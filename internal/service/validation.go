package service

import (
	"errors"
	"fmt"
	"reflect"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/util"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	minActivityHours = decimal.RequireFromString("0.1")
	maxActivityHours = decimal.RequireFromString("99.99")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误字段名使用 json 标签
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("resource_type", func(fl validator.FieldLevel) bool {
		return model.ResourceType(fl.Field().String()).Valid()
	})
	v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return model.Platform(fl.Field().String()).Valid()
	})
	v.RegisterValidation("skill_status", func(fl validator.FieldLevel) bool {
		return model.SkillStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return model.Difficulty(fl.Field().Int()).Valid()
	})

	return v
}

// validateStruct 把 validator 的错误转换为按字段归类的 ValidationError
func validateStruct(s interface{}) *util.ValidationError {
	verr := &util.ValidationError{}

	err := validate.Struct(s)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("non_field_errors", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "http_url", "url":
		return "Enter a valid URL."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "resource_type", "platform", "skill_status", "difficulty":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

// validateActivityHours 单次学习时长：大于 0.1，最多两位小数，不超过 99.99
func validateActivityHours(verr *util.ValidationError, hours decimal.Decimal) {
	switch {
	case !hours.GreaterThan(minActivityHours):
		verr.Add("hours_spent", "Ensure this value is greater than 0.1.")
	case !hours.Equal(hours.Round(2)):
		verr.Add("hours_spent", "Ensure that there are no more than 2 decimal places.")
	case hours.GreaterThan(maxActivityHours):
		verr.Add("hours_spent", "Ensure this value is less than or equal to 99.99.")
	}
}
