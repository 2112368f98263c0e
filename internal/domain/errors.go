package domain

import "errors"

var (
	ErrPaymentUnsupported   = errors.New("component does not accept a payment strategy")
	ErrUnknownKind          = errors.New("unknown component kind")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)
