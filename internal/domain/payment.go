package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodWallet PaymentMethod = "wallet"
)

// PaymentStrategy is how a visitor settles a bill. Implementations are
// immutable once built.
type PaymentStrategy interface {
	Method() PaymentMethod
	Credential() string
	Pay(amount float64) string
}

type CardPayment struct{ number string }

func NewCardPayment(number string) CardPayment { return CardPayment{number: number} }

func (p CardPayment) Method() PaymentMethod { return MethodCard }
func (p CardPayment) Credential() string    { return p.number }

func (p CardPayment) Pay(amount float64) string {
	return fmt.Sprintf("Paid $%s using credit card %s", FormatAmount(amount), p.number)
}

type WalletPayment struct{ email string }

func NewWalletPayment(email string) WalletPayment { return WalletPayment{email: email} }

func (p WalletPayment) Method() PaymentMethod { return MethodWallet }
func (p WalletPayment) Credential() string    { return p.email }

func (p WalletPayment) Pay(amount float64) string {
	return fmt.Sprintf("Paid $%s using PayPal with email %s", FormatAmount(amount), p.email)
}

// NewPaymentStrategy maps a configured method name to its strategy.
// "paypal" is accepted as an alias of "wallet".
func NewPaymentStrategy(method, card, email string) (PaymentStrategy, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(method))) {
	case MethodCard, "":
		return NewCardPayment(card), nil
	case MethodWallet, "paypal":
		return NewWalletPayment(email), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
	}
}

// FormatAmount renders the shortest decimal form, always with a fractional
// part: 100 -> "100.0", 12.5 -> "12.5".
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
