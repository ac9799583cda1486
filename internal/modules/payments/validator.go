package payments

import (
	"regexp"
	"strconv"
	"strings"
)

// User-facing validation messages. Every failed rule reports; the user sees
// them together, not just the first.
const (
	MsgNameRequired = "Name on card is required."
	MsgCardNumber   = "Card number must be exactly 16 digits (numbers only)."
	MsgExpiryFormat = "Expiry must be in MM/YY format (MM/YY)."
	MsgExpiryMonth  = "Expiry month must be between 01 and 12."
	MsgCVV          = "CVV must be 3 or 4 digits."
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Validate checks the card form and collects every applicable error message.
// Format rules only: no Luhn check, and no past-date check on the expiry.
func Validate(f CardForm) (Result, []string) {
	name := strings.TrimSpace(f.Name)
	number := whitespaceRe.ReplaceAllString(f.Number, "")
	expiry := strings.TrimSpace(f.Expiry)
	cvv := strings.TrimSpace(f.CVV)

	var errs []string

	if len(name) == 0 {
		errs = append(errs, MsgNameRequired)
	}

	if !cardNumberRe.MatchString(number) {
		errs = append(errs, MsgCardNumber)
	}

	// The month range is only checked once the MM/YY shape matched; a
	// malformed expiry reports the format error alone.
	if m := expiryRe.FindStringSubmatch(expiry); m == nil {
		errs = append(errs, MsgExpiryFormat)
	} else {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			errs = append(errs, MsgExpiryMonth)
		}
	}

	if !cvvRe.MatchString(cvv) {
		errs = append(errs, MsgCVV)
	}

	if len(errs) > 0 {
		return Result{}, errs
	}

	return Result{
		Customer: name,
		Last4:    number[len(number)-4:],
	}, nil
}
