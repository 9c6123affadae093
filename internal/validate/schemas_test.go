package validate

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPayload_Sanitizes(t *testing.T) {
	p := RegisterPayload{
		Name:     "  Alice  ",
		Email:    "  Alice@Example.COM ",
		Password: "Password1",
	}
	errs := p.Validate()

	assert.Empty(t, errs)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestRegisterPayload_CollectsAllViolations(t *testing.T) {
	p := RegisterPayload{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
	}
	errs := p.Validate()

	assert.Equal(t, []string{
		"name must be at least 2 characters",
		"email must be a valid email address",
		"password must be at least 8 characters",
		"password must contain at least one lowercase letter, one uppercase letter and one digit",
	}, errs)
}

func TestRegisterPayload_PasswordRules(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Password1", true},
		{"password1", false}, // 无大写
		{"PASSWORD1", false}, // 无小写
		{"Passwordx", false}, // 无数字
		{"Pa1" + strings.Repeat("x", 126), false}, // 超过 128
		{"Pa1xxxxx", true},
	}
	for _, tc := range cases {
		p := RegisterPayload{Name: "Alice", Email: "a@b.com", Password: tc.password}
		errs := p.Validate()
		if tc.ok {
			assert.Empty(t, errs, "password %q", tc.password)
		} else {
			assert.NotEmpty(t, errs, "password %q", tc.password)
		}
	}
}

func TestRegisterPayload_Required(t *testing.T) {
	p := RegisterPayload{}
	errs := p.Validate()

	assert.Equal(t, []string{
		"name is required",
		"email is required",
		"password is required",
	}, errs)
}

func TestLoginPayload_PasswordFormatNotChecked(t *testing.T) {
	p := LoginPayload{Email: "a@b.com", Password: "x"}
	assert.Empty(t, p.Validate())
}

func TestLoginPayload_Required(t *testing.T) {
	p := LoginPayload{}
	assert.Equal(t, []string{"email is required", "password is required"}, p.Validate())
}

func TestBookCreatePayload(t *testing.T) {
	year := 2020
	p := BookCreatePayload{Title: "Dune", Author: "Herbert", Year: &year}
	assert.Empty(t, p.Validate())
}

func TestBookCreatePayload_Violations(t *testing.T) {
	futureYear := time.Now().Year() + 1
	p := BookCreatePayload{
		Author:      strings.Repeat("a", 256),
		Description: strings.Repeat("d", 2001),
		Year:        &futureYear,
		Genre:       strings.Repeat("g", 101),
	}
	errs := p.Validate()

	assert.Equal(t, []string{
		"title is required",
		"author cannot exceed 255 characters",
		"description cannot exceed 2000 characters",
		fmt.Sprintf("year must be between 0 and %d", time.Now().Year()),
		"genre cannot exceed 100 characters",
	}, errs)
}

func TestBookCreatePayload_OptionalFieldsAbsent(t *testing.T) {
	p := BookCreatePayload{Title: "Dune", Author: "Herbert"}
	assert.Empty(t, p.Validate())
}

func TestBookCreatePayload_NegativeYear(t *testing.T) {
	year := -1
	p := BookCreatePayload{Title: "Dune", Author: "Herbert", Year: &year}
	assert.Len(t, p.Validate(), 1)
}

func TestBookUpdatePayload_AtLeastOneField(t *testing.T) {
	p := BookUpdatePayload{}
	assert.Equal(t, []string{"at least one field required"}, p.Validate())
}

func TestBookUpdatePayload_SingleField(t *testing.T) {
	title := "New Title"
	p := BookUpdatePayload{Title: &title}
	assert.Empty(t, p.Validate())
}

func TestBookUpdatePayload_FieldRulesStillApply(t *testing.T) {
	long := strings.Repeat("t", 256)
	p := BookUpdatePayload{Title: &long}
	assert.Equal(t, []string{"title cannot exceed 255 characters"}, p.Validate())
}
