package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/types"
)

// FieldError is one violated constraint on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidate()

// personNameRe allows letters of any script plus spaces and common name
// punctuation, matching the user-name constraint of the API contract.
var personNameRe = regexp.MustCompile(`^[\p{L} .'-]+$`)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Dates validate as their underlying time.Time.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(types.Date); ok {
			return d.Time
		}
		return nil
	}, types.Date{})

	mustRegister(v, "notblank", notBlank)
	mustRegister(v, "personname", personName)
	mustRegister(v, "pastdate", pastDate)
	mustRegister(v, "todayorfuture", todayOrFuture)
	mustRegister(v, "minage", minimumAge)
	mustRegister(v, "priority", validPriority)
	mustRegister(v, "taskstatus", validStatus)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// Struct validates a request DTO and returns every violated field, with
// messages resolved from the DTO's message table. A nil result means the
// value is valid.
func Struct(s any, messages map[string]string) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe, messages),
		})
	}
	return out
}

// messageFor resolves the human-readable message for a violation. List
// element violations (field names like "tags[3]") are keyed as
// "<field>.item.<tag>" so they do not collide with list-level rules.
func messageFor(fe validator.FieldError, messages map[string]string) string {
	field := fe.Field()
	key := field + "." + fe.Tag()
	if i := strings.IndexByte(field, '['); i >= 0 {
		key = field[:i] + ".item." + fe.Tag()
	}

	if msg, ok := messages[key]; ok {
		return msg
	}
	return field + " is invalid"
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func personName(fl validator.FieldLevel) bool {
	return personNameRe.MatchString(fl.Field().String())
}

func pastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.Before(types.Today().Time)
}

func todayOrFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(types.Today().Time)
}

func minimumAge(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return types.Age(t, time.Now()) >= 18
}

func validPriority(fl validator.FieldLevel) bool {
	_, ok := models.ParseTaskPriority(fl.Field().String())
	return ok
}

func validStatus(fl validator.FieldLevel) bool {
	_, ok := models.ParseTaskStatus(fl.Field().String())
	return ok
}
