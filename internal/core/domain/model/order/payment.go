package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// PaymentMethod distinguishes cash-on-delivery orders, whose amounts flow
// through the driver cash ledger, from prepaid ones, which do not.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// CashOnDelivery means the driver collects the amount at the door.
	CashOnDelivery

	// Prepaid means the amount was settled before dispatch.
	Prepaid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "cod",
		Prepaid:        "prepaid",
	}
}

// PaymentMethodFromString parses a wire name ("cod", "prepaid") into a
// PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the valid methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
