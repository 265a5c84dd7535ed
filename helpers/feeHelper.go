package helpers

import (
	"math"
	"strings"
)

const FreeDeliveryThreshold = 1000

type feeBand struct {
	keywords []string
	fee      float64
}

var deliveryBands = []feeBand{
	{keywords: []string{"gec", "agrabad"}, fee: 30},
	{keywords: []string{"nasirabad"}, fee: 50},
	{keywords: []string{"halishahar"}, fee: 70},
}

const defaultDeliveryFee = 100

// DeliveryFee picks the first band whose keyword appears in the address.
func DeliveryFee(subtotal float64, address string) float64 {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	addr := strings.ToLower(address)
	for _, band := range deliveryBands {
		for _, kw := range band.keywords {
			if strings.Contains(addr, kw) {
				return band.fee
			}
		}
	}
	return defaultDeliveryFee
}

// MinorUnits converts a taka amount to the poisha integer the gateway expects.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
