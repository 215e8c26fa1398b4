package shared

import (
	"errors"
	"reflect"
	"strings"

	"storefront/listview"
	"storefront/middleware"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	notBlankTag = "notblank"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Report JSON names, not Go field names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		if str, ok := fl.Field().Interface().(string); ok {
			return strings.TrimSpace(str) != ""
		}
		return false
	})
	RegisterMessages(map[string]string{notBlankTag: "{0} cannot be blank"})
}

// RegisterMessages sets the English message for custom tags. {0} is the field name.
func RegisterMessages(messages map[string]string) {
	for tag, text := range messages {
		tag, text := tag, text
		_ = Validate.RegisterTranslation(tag, Translator,
			func(trans ut.Translator) error { return trans.Add(tag, text, true) },
			func(trans ut.Translator, fe validator.FieldError) string {
				msg, err := trans.T(fe.Tag(), fe.Field())
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
	}
}

// Errors turns a validation error into a field -> message map.
func Errors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		if _, seen := out[field]; !seen {
			out[field] = fe.Translate(Translator)
		}
	}
	return out
}

// Struct validates v and returns its field errors, empty when valid.
func Struct(v interface{}) map[string]string {
	return Errors(Validate.Struct(v))
}

// ListParams parses and clamps list view query parameters.
// A changed filter set, compared with the filterKey the page echoes back, returns to page 1.
func ListParams(allowedSorts ...string) fiber.Handler {
	return ListParamsWith(nil, allowedSorts...)
}

// ListParamsWith is ListParams for routes that pin some filters server-side.
// fixed runs before the filter key is compared, so pinned fields never look like a filter change.
func ListParamsWith(fixed func(*listview.Params), allowedSorts ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := new(listview.Params)
		if err := c.QueryParser(params); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		params.Normalize(allowedSorts...)
		if fixed != nil {
			fixed(params)
		}
		params.ResetIfFiltersChanged(c.Query("filterKey"))

		c.Locals("listParams", params)
		return c.Next()
	}
}

// ListParamsFrom returns the parsed list params, or defaults when the middleware did not run.
func ListParamsFrom(c *fiber.Ctx) *listview.Params {
	if p, ok := c.Locals("listParams").(*listview.Params); ok {
		return p
	}
	p := &listview.Params{}
	p.Normalize()
	return p
}
