package payments

import (
	"reflect"
	"testing"
)

func validForm() CardForm {
	return CardForm{
		Name:   "Jane Doe",
		Number: "1234 5678 9012 3456",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func TestValidateSuccess(t *testing.T) {
	res, errs := Validate(validForm())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if res.Customer != "Jane Doe" {
		t.Errorf("Customer = %q, want %q", res.Customer, "Jane Doe")
	}
	if res.Last4 != "3456" {
		t.Errorf("Last4 = %q, want %q", res.Last4, "3456")
	}
}

func TestValidateTrimsAndStrips(t *testing.T) {
	f := validForm()
	f.Name = "  Jane Doe  "
	f.Number = " 1234 5678\t9012 3456 "
	f.CVV = " 1234 "

	res, errs := Validate(f)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if res.Customer != "Jane Doe" {
		t.Errorf("Customer = %q, want trimmed name", res.Customer)
	}
	if res.Last4 != "3456" {
		t.Errorf("Last4 = %q, want %q", res.Last4, "3456")
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CardForm)
		want   []string
	}{
		{
			name:   "empty name",
			mutate: func(f *CardForm) { f.Name = "   " },
			want:   []string{MsgNameRequired},
		},
		{
			name:   "15 digit number",
			mutate: func(f *CardForm) { f.Number = "123456789012345" },
			want:   []string{MsgCardNumber},
		},
		{
			name:   "number with letters",
			mutate: func(f *CardForm) { f.Number = "1234abcd90123456" },
			want:   []string{MsgCardNumber},
		},
		{
			name:   "month out of range",
			mutate: func(f *CardForm) { f.Expiry = "13/25" },
			want:   []string{MsgExpiryMonth},
		},
		{
			name:   "month zero",
			mutate: func(f *CardForm) { f.Expiry = "00/25" },
			want:   []string{MsgExpiryMonth},
		},
		{
			// A malformed expiry never also reports the month-range error.
			name:   "single digit month",
			mutate: func(f *CardForm) { f.Expiry = "7/25" },
			want:   []string{MsgExpiryFormat},
		},
		{
			name:   "cvv too short",
			mutate: func(f *CardForm) { f.CVV = "12" },
			want:   []string{MsgCVV},
		},
		{
			name:   "cvv too long",
			mutate: func(f *CardForm) { f.CVV = "12345" },
			want:   []string{MsgCVV},
		},
		{
			name: "all fields bad collects all messages",
			mutate: func(f *CardForm) {
				f.Name = ""
				f.Number = "42"
				f.Expiry = "never"
				f.CVV = "x"
			},
			want: []string{MsgNameRequired, MsgCardNumber, MsgExpiryFormat, MsgCVV},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			_, errs := Validate(f)
			if !reflect.DeepEqual(errs, tt.want) {
				t.Errorf("Validate errors = %v, want %v", errs, tt.want)
			}
		})
	}
}

func TestValidateWhitespaceInNumberOK(t *testing.T) {
	f := validForm()
	f.Number = "1234 5678 9012 3456"
	if _, errs := Validate(f); len(errs) != 0 {
		t.Fatalf("spaced 16-digit number should pass, got %v", errs)
	}
}
