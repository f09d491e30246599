package format

import "fmt"

// Price formats an hourly court price.
func Price(price float64) string {
	return fmt.Sprintf("$%.2f / hr", price)
}

// PriceShort drops the cents when they are zero.
func PriceShort(price float64) string {
	if price == float64(int(price)) {
		return fmt.Sprintf("$%.0f", price)
	}
	return fmt.Sprintf("$%.2f", price)
}
