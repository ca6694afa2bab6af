package application

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator. Field names in errors use the
// json tag, so messages match the request documents users write.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator instance.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s against its validate tags.
func (val *Validator) Struct(s any) error {
	return describe(val.v.Struct(s))
}

// Var validates a single value against a tag.
func (val *Validator) Var(field any, tag string) error {
	return describe(val.v.Var(field, tag))
}

// describe flattens validation errors into "path: rule" clauses.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s (got %v)", fieldPath(fe.Namespace()), rule, fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(ns string) string {
	if ns == "" {
		return "value"
	}
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
