package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type catForm struct {
	Gender    string `validate:"omitempty,catgender"`
	BirthDate string `validate:"omitempty,isodate"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	if err := Register(v); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		form catForm
		ok   bool
	}{
		{"empty", catForm{}, true},
		{"valid", catForm{Gender: "female", BirthDate: "2021-05-17"}, true},
		{"bad gender", catForm{Gender: "tomcat"}, false},
		{"bad date", catForm{BirthDate: "17/05/2021"}, false},
		{"impossible date", catForm{BirthDate: "2021-02-30"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if (err == nil) != tt.ok {
				t.Errorf("Struct() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Linh@Example.COM "); got != "linh@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, email := range []string{"no-at-sign", "trailing@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true", email)
		}
	}
}
