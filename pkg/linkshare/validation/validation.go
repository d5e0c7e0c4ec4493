// Package validation checks group submissions before they reach the store.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

// WhatsAppHost is the substring every invite link must contain
const WhatsAppHost = "chat.whatsapp.com"

// WhatsAppLinkMessage is reported when a link fails the WhatsApp check
const WhatsAppLinkMessage = "Must be a valid WhatsApp group invite link"

// InvalidLinkMessage is the top-level message when a request carries a link
// outside WhatsApp
const InvalidLinkMessage = "Invalid WhatsApp group link. Must contain 'chat.whatsapp.com'"

// GroupInput is the wire shape of a group submission
type GroupInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=50"`
	Country     string `json:"country" validate:"max=50"`
	Link        string `json:"link" validate:"required,url,whatsapp"`
	Owner       string `json:"owner" validate:"required,max=100"`
	Members     *int   `json:"members" validate:"omitempty,min=0"`
}

// FieldError describes one violated field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned when a submission fails validation.
// It lists every violation, not just the first.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

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
	if err := v.RegisterValidation("whatsapp", func(fl validator.FieldLevel) bool {
		return IsWhatsAppLink(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsWhatsAppLink reports whether link points at a WhatsApp group invite
func IsWhatsAppLink(link string) bool {
	return strings.Contains(link, WhatsAppHost)
}

// Validate decodes a JSON submission, applies defaults and checks every field.
// On failure the returned error is an *Errors.
func Validate(body []byte) (models.NewGroup, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		errs := &Errors{}
		errs.add("body", "Expected a JSON object")
		return models.NewGroup{}, errs
	}

	errs := &Errors{}
	var in GroupInput
	decodeFields(raw, &in, errs)

	return check(in, errs)
}

// check validates a decoded submission, appending violations to errs.
// Text is stored as submitted apart from surrounding whitespace.
func check(in GroupInput, errs *Errors) (models.NewGroup, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Country = strings.TrimSpace(in.Country)
	in.Owner = strings.TrimSpace(in.Owner)
	in.Link = strings.TrimSpace(in.Link)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.NewGroup{}, fmt.Errorf("validate group: %w", err)
		}
		for _, fe := range verrs {
			if errs.has(fe.Field()) {
				continue
			}
			errs.add(fe.Field(), messageFor(fe))
		}
	}

	if len(errs.Fields) > 0 {
		return models.NewGroup{}, errs
	}

	group := models.NewGroup{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Country:     in.Country,
		Link:        in.Link,
		Owner:       in.Owner,
	}
	if group.Country == "" {
		group.Country = models.DefaultCountry
	}
	if in.Members != nil {
		group.Members = *in.Members
	}
	return group, nil
}

func (e *Errors) has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// decodeFields decodes each known field on its own so that one bad type does
// not hide violations in the other fields.
func decodeFields(raw map[string]json.RawMessage, in *GroupInput, errs *Errors) {
	strField := func(name string, dst *string) {
		msg, ok := raw[name]
		if !ok || isNull(msg) {
			return
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			errs.add(name, "Expected string")
		}
	}

	strField("name", &in.Name)
	strField("description", &in.Description)
	strField("category", &in.Category)
	strField("country", &in.Country)
	strField("link", &in.Link)
	strField("owner", &in.Owner)

	if msg, ok := raw["members"]; ok && !isNull(msg) {
		var n int
		if err := json.Unmarshal(msg, &n); err != nil {
			errs.add("members", "Expected integer")
		} else {
			in.Members = &n
		}
	}
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "category":
			return "Category is required"
		default:
			return "Required"
		}
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "min":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "url":
		return "Invalid url"
	case "whatsapp":
		return WhatsAppLinkMessage
	default:
		return "Invalid value"
	}
}
