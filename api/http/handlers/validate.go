package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/thedenisnikulin/nocsdegree.ru/api/http/presenter"
)

// создаём валидатор один раз, он кэширует разобранные теги структур
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON parses and validates the body. It returns false after writing a 400 response.
func bindJSON(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	err := validate.Struct(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		_ = presenter.Error(c, http.StatusBadRequest, err.Error())
		return false
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe.Namespace())] = fe.Tag()
	}
	_ = presenter.ValidationError(c, details)
	return false
}

// fieldPath drops the struct name: "loadJobsRequest.tags.city" -> "tags.city".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
