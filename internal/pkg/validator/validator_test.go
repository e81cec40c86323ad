package validator

import (
	"testing"
	"time"
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
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // v7 uppercase
		"123e4567-e89b-12d3-a456-426614174000", // v1
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",         // missing dashes
		"urn:uuid:123e4567-e89b-12d3-a456-426614174000", // urn form
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",     // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsNilUUID(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"00000000-0000-0000-0000-000000000000", true},
		{" 00000000-0000-0000-0000-000000000000 ", true},
		{"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", false},
		{"not-a-uuid", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsNilUUID(c.input); got != c.want {
			t.Errorf("IsNilUUID(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-10T23:59:00Z", time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC), true},
		{"2024-01-10T01:00:00+07:00", time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC), true},
		{"2024-01-10T08:30:00", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), true},
		{" 2024-01-10 ", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{"10/01/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseDateTime(c.input)
		if ok != c.ok {
			t.Errorf("ParseDateTime(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDateTime(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	got := DateOnly(in)
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
	if FormatDate(in) != "2024-01-10" {
		t.Errorf("FormatDate(%v) = %q", in, FormatDate(in))
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email"},
	}
	if errs.Error() != "name: name is required; email: invalid email" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	msgs := errs.Messages()
	if len(msgs) != 2 || msgs[0] != "name is required" || msgs[1] != "invalid email" {
		t.Errorf("unexpected Messages(): %v", msgs)
	}
}
