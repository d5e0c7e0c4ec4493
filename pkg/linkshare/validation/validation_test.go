package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs *Errors
	require.True(t, errors.As(err, &verrs), "expected *Errors, got %v", err)
	out := make(map[string]string, len(verrs.Fields))
	for _, f := range verrs.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateAppliesDefaults(t *testing.T) {
	body := `{"name":"Test","description":"d","category":"education","link":"https://chat.whatsapp.com/abc","owner":"Bob"}`

	group, err := Validate([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, models.NewGroup{
		Name:        "Test",
		Description: "d",
		Category:    "education",
		Country:     models.DefaultCountry,
		Link:        "https://chat.whatsapp.com/abc",
		Owner:       "Bob",
		Members:     0,
	}, group)
}

func TestValidateKeepsProvidedOptionalFields(t *testing.T) {
	body := `{"name":"Test","description":"d","category":"sports","country":"India","link":"https://chat.whatsapp.com/abc","owner":"Bob","members":42}`

	group, err := Validate([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "India", group.Country)
	assert.Equal(t, 42, group.Members)
}

func TestValidateRejectsNonWhatsAppLink(t *testing.T) {
	body := `{"name":"Test","description":"d","category":"education","link":"https://example.com/abc","owner":"Bob"}`

	_, err := Validate([]byte(body))
	require.Error(t, err)

	fields := fieldErrors(t, err)
	assert.Len(t, fields, 1)
	assert.Equal(t, WhatsAppLinkMessage, fields["link"])
}

func TestValidateRejectsMalformedURL(t *testing.T) {
	body := `{"name":"Test","description":"d","category":"education","link":"chat.whatsapp.com/abc","owner":"Bob"}`

	_, err := Validate([]byte(body))

	fields := fieldErrors(t, err)
	assert.Equal(t, "Invalid url", fields["link"])
}

func TestValidateReportsEveryViolation(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 101) + `","members":"ten","link":"https://example.com"}`

	_, err := Validate([]byte(body))

	fields := fieldErrors(t, err)
	for _, name := range []string{"name", "description", "category", "link", "owner", "members"} {
		assert.Contains(t, fields, name)
	}
	assert.Equal(t, "Expected integer", fields["members"])
	assert.Equal(t, "Category is required", fields["category"])
	assert.Contains(t, fields["name"], "100")
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	body := `{"name":12,"description":"d","category":"education","link":"https://chat.whatsapp.com/abc","owner":"Bob"}`

	_, err := Validate([]byte(body))

	fields := fieldErrors(t, err)
	assert.Equal(t, map[string]string{"name": "Expected string"}, fields)
}

func TestValidateRejectsNegativeMembers(t *testing.T) {
	body := `{"name":"Test","description":"d","category":"education","link":"https://chat.whatsapp.com/abc","owner":"Bob","members":-1}`

	_, err := Validate([]byte(body))

	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "members")
}

func TestValidateRejectsNonObjectBody(t *testing.T) {
	for _, body := range []string{``, `[]`, `"text"`, `null`, `{`} {
		t.Run(body, func(t *testing.T) {
			_, err := Validate([]byte(body))
			fields := fieldErrors(t, err)
			assert.Contains(t, fields, "body")
		})
	}
}

func TestValidateKeepsTextAsSubmitted(t *testing.T) {
	tests := []struct {
		field string
		value string
	}{
		{"description", "a<b and c>d"},
		{"description", "Use <T> generics"},
		{"name", "List<String> fans"},
		{"name", "<Admins>"},
		{"name", "Fitness & Wellness"},
		{"owner", "<b>Coach</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			in := map[string]interface{}{
				"name":        "Test",
				"description": "d",
				"category":    "lifestyle",
				"link":        "https://chat.whatsapp.com/abc",
				"owner":       "Coach",
			}
			in[tt.field] = tt.value
			body, err := json.Marshal(in)
			require.NoError(t, err)

			group, err := Validate(body)
			require.NoError(t, err)

			got := map[string]string{
				"name":        group.Name,
				"description": group.Description,
				"owner":       group.Owner,
			}
			assert.Equal(t, tt.value, got[tt.field])
		})
	}
}

func TestValidateTrimsWhitespace(t *testing.T) {
	body := `{"name":"   ","description":"d","category":"education","link":"  https://chat.whatsapp.com/abc  ","owner":" Bob "}`

	_, err := Validate([]byte(body))
	fields := fieldErrors(t, err)
	assert.Equal(t, map[string]string{"name": "Required"}, fields)
}

func TestIsWhatsAppLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://chat.whatsapp.com/abc", true},
		{"http://chat.whatsapp.com/", true},
		{"https://example.com/?next=chat.whatsapp.com", true},
		{"https://whatsapp.com/abc", false},
		{"https://wa.me/123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWhatsAppLink(tt.link))
		})
	}
}

func TestErrorsMessage(t *testing.T) {
	errs := &Errors{}
	errs.add("name", "Required")
	errs.add("link", WhatsAppLinkMessage)

	assert.Equal(t, "validation failed: name: Required; link: "+WhatsAppLinkMessage, errs.Error())
}
