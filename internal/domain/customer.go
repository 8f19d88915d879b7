package domain

import (
	"sort"
	"strings"
	"unicode"
)

// CustomerInfo is persisted separately from the cart so repeat checkouts
// pre-fill the form. It survives a successful checkout.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

const minPhoneDigits = 9

// ValidationErrors maps a field name to a human-readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validate returns nil when the info is acceptable for checkout.
func (c CustomerInfo) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "name is required"
	}

	if countDigits(c.Phone) < minPhoneDigits {
		errs["phone"] = "phone must contain at least 9 digits"
	}

	if strings.TrimSpace(c.Address) == "" {
		errs["address"] = "address is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func countDigits(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
