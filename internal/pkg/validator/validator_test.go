package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@hris.com", "budi.santoso@example.com", "a@b.cd"}
	invalid := []string{"admin@", "@hris.com", "admin@.com", "admin@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "199001012020011001"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2023-01", "2024-12"}
	invalid := []string{"2023-13", "2023-1", "01-2023", "2023-01-01", ""}
	for _, m := range valid {
		if _, ok := IsValidMonth(m); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:05", "17:30", "23:59"}
	invalid := []string{"24:00", "7:30", "17:60", "1730", "", "17:3"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

type row struct {
	Name   string `csv:"name" validate:"required"`
	Email  string `csv:"email" validate:"required,email"`
	Joined string `csv:"joinDate" validate:"required,date"`
	Status string `csv:"status" validate:"oneof=active inactive"`
}

func TestStruct(t *testing.T) {
	ok := row{Name: "Budi", Email: "budi@example.com", Joined: "2020-01-15", Status: "active"}
	if err := Struct(ok); err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	bad := row{Email: "nope", Joined: "15/01/2020", Status: "retired"}
	err := Struct(bad)
	errs, isValidation := err.(ValidationErrors)
	if !isValidation {
		t.Fatalf("Struct(invalid) returned %T, want ValidationErrors", err)
	}
	fields := errs.ToMap()
	for _, f := range []string{"name", "email", "joinDate", "status"} {
		if _, found := fields[f]; !found {
			t.Errorf("expected error for field %q, got %v", f, fields)
		}
	}
}
