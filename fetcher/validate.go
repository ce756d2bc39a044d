package fetcher

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type requestValidator struct {
	v     *validator.Validate
	trans ut.Translator
}

var newValidator = sync.OnceValue(func() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	trans, ok := ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("fetcher: missing en translator")
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}

	// Report fields by their json names, matching what operators type.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{v: v, trans: trans}
})

// Validate checks val against its validate struct tags. Failures are
// returned as [FieldErrors].
func Validate(val any) error {
	rv := newValidator()

	err := rv.v.Struct(val)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Err: rv.message(fe)}
	}
	return fields
}

func (rv *requestValidator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "http_url":
		return "must be an absolute http or https URL"
	}
	return fe.Translate(rv.trans)
}

// FieldError names one request field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	var b strings.Builder
	for i, f := range fe {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Field)
		b.WriteByte(' ')
		b.WriteString(f.Err)
	}
	return b.String()
}
