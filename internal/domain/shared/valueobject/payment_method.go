package valueobject

// PaymentMethod represents how money changed hands
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}
