package money

import "errors"

// Validation errors raised by constructors and operations. Every failure is
// deterministic for a given input and is the immediate caller's problem;
// there is no retry or recovery path.
var (
	ErrInvalidAmount    = errors.New("amount must be numeric")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrInvalidCurrency  = errors.New("currency code must be exactly 3 uppercase letters")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeResult   = errors.New("subtraction result cannot be negative")
	ErrInvalidFactor    = errors.New("factor must be numeric")
	ErrNegativeFactor   = errors.New("factor cannot be negative")
	ErrInvalidDivisor   = errors.New("divisor must be numeric")
	ErrDivideByZero     = errors.New("division by zero")
	ErrNegativeDivisor  = errors.New("divisor cannot be negative")
)
