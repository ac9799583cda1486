package view

import "fmt"

// Money formats a dollar amount with two decimals, e.g. 10.7 -> "$10.70".
// Fixed USD; the receipt pages do not localize currency.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
