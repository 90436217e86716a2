// Package validation - общие правила проверки входных данных.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Границы длины для гостевой книги.
const (
	NameMin    = 2
	NameMax    = 50
	MessageMin = 5
	MessageMax = 500
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})
	return v
}

// CommentInput - нормализованные поля комментария.
type CommentInput struct {
	Name    string `json:"name" validate:"min=2,max=50"`
	Message string `json:"message" validate:"min=5,max=500"`
	Email   string `json:"email" validate:"omitempty,simple_email"`
	Website string `json:"website"`
}

// NormalizeComment обрезает пробелы по краям всех полей.
func NormalizeComment(in CommentInput) CommentInput {
	return CommentInput{
		Name:    strings.TrimSpace(in.Name),
		Message: strings.TrimSpace(in.Message),
		Email:   strings.TrimSpace(in.Email),
		Website: strings.TrimSpace(in.Website),
	}
}

// Comment проверяет уже нормализованный комментарий.
func Comment(in CommentInput) error {
	return Struct(in)
}

// CommentPatch нормализует и проверяет только переданные поля.
func CommentPatch(p domain.CommentPatch) (domain.CommentPatch, error) {
	out := domain.CommentPatch{
		Name:    trimmed(p.Name),
		Message: trimmed(p.Message),
		Email:   trimmed(p.Email),
		Website: trimmed(p.Website),
	}
	if out.Name != nil {
		if err := Var("name", *out.Name, "min=2,max=50"); err != nil {
			return out, err
		}
	}
	if out.Message != nil {
		if err := Var("message", *out.Message, "min=5,max=500"); err != nil {
			return out, err
		}
	}
	// Пустой email означает "очистить", такой не проверяем.
	if out.Email != nil && *out.Email != "" {
		if err := Var("email", *out.Email, "simple_email"); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Struct проверяет структуру по тегам validate.
func Struct(s any) error {
	return translate("", validate.Struct(s))
}

// Var проверяет одно значение.
func Var(field string, value any, tag string) error {
	return translate(field, validate.Var(value, tag))
}

func translate(field string, err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if field == "" {
		field = fe.Field()
	}
	return &domain.ValidationError{Field: field, Message: message(field, fe)}
}

func message(field string, fe validator.FieldError) string {
	switch {
	case field == "name" && fe.Tag() == "min":
		return "Name must be at least 2 characters long"
	case field == "name" && fe.Tag() == "max":
		return "Name must be at most 50 characters long"
	case field == "message" && fe.Tag() == "min":
		return "Message must be at least 5 characters long"
	case field == "message" && fe.Tag() == "max":
		return "Message must be less than 500 characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "simple_email":
		return "Invalid email format"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "yearmonth":
		return field + " must be in YYYY-MM format"
	case "datetime":
		return field + " must be in YYYY-MM-DD format"
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "min":
		return field + " is too short"
	case "max":
		return field + " is too long"
	default:
		return field + " is invalid"
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
