package validatorx

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

var (
	looseEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// what an <input type="email"> accepts; a dotless domain such as a@b is valid
	htmlEmailRegex  = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	personNameRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
	contactRegex    = regexp.MustCompile(`^[0-9]{10,14}$`)
)

// Init initializes the validator singleton (idempotent, safe for concurrent use)
func Init() {
	once.Do(build)
}

func build() {
	nv := gpvalidator.New()

	// report fields by their json name so error sets match the wire format
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = nv.RegisterValidation("looseemail", matchString(looseEmailRegex))
	_ = nv.RegisterValidation("htmlemail", matchString(htmlEmailRegex))
	_ = nv.RegisterValidation("contact", matchString(contactRegex))
	_ = nv.RegisterValidation("personname", func(fl gpvalidator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 2 && personNameRegex.MatchString(s)
	})

	v = nv
}

func matchString(re *regexp.Regexp) gpvalidator.Func {
	return func(fl gpvalidator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// ValidateVar validates a single value against a tag expression, e.g. "looseemail".
func ValidateVar(field interface{}, tag string) error {
	Init()
	return v.Var(field, tag)
}

// firstFailures keeps the first failure per field, in struct declaration order.
// Non-validation errors yield nil.
func firstFailures(err error) []gpvalidator.FieldError {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(verrs))
	out := make([]gpvalidator.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out = append(out, fe)
	}
	return out
}

// FirstField returns the first failing field name of a validation error, in
// struct declaration order.
func FirstField(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Field()
}

// FieldMessages flattens a validation error into field name -> sentence fit for
// inline display next to the input. Non-validation errors yield nil.
func FieldMessages(err error) map[string]string {
	failures := firstFailures(err)
	if failures == nil {
		return nil
	}
	out := make(map[string]string, len(failures))
	for _, fe := range failures {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Please fill out this field."
	case "oneof":
		return "Please select an item in the list."
	case "email", "looseemail", "htmlemail":
		return "Please enter a valid email address."
	case "max":
		return "Please shorten this text to " + fe.Param() + " characters or less."
	case "datetime":
		if fe.Param() == "15:04" {
			return "Please enter a valid time (HH:MM)."
		}
		return "Please enter a valid date (YYYY-MM-DD)."
	default:
		return "Please enter a valid value."
	}
}
