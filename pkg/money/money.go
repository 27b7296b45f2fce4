// Package money provides an immutable, currency-aware monetary value object.
//
// Amounts are arbitrary-precision decimals, never binary floats, so sums
// like 0.1 + 0.2 are exact. Every operation returns a new Money; the
// receiver is never mutated, which also makes values safe to share across
// goroutines without coordination. The non-negative invariant is enforced
// eagerly: no operation can produce a negative Money, not even transiently.
package money

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/lumopay/moneta/pkg/domain"
)

// DefaultCurrency is applied when a constructor receives an empty currency code.
const DefaultCurrency = "JPY"

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrencyCode reports whether code is exactly three uppercase ASCII letters.
func ValidCurrencyCode(code string) bool {
	return currencyPattern.MatchString(code)
}

// Money is a non-negative monetary amount tagged with a currency code.
// The zero value is usable but meaningless; construct through New and its
// variants so the invariants hold.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New builds a Money from a decimal amount and a currency code. An empty
// currency selects DefaultCurrency.
func New(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if !ValidCurrencyCode(currency) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewFromString builds a Money from a decimal string such as "1234.56".
func NewFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return New(d, currency)
}

// NewFromFloat builds a Money from a float64. The conversion goes through
// the float's shortest decimal string representation, so NewFromFloat(0.1)
// holds exactly 0.1, not the nearest binary float.
func NewFromFloat(amount float64, currency string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return New(decimal.NewFromFloat(amount), currency)
}

// NewFromInt builds a Money from an integral amount of major units.
func NewFromInt(amount int64, currency string) (Money, error) {
	return New(decimal.NewFromInt(amount), currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the 3-letter currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Add returns the sum of m and other. The currencies must match; the check
// short-circuits before any arithmetic.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns the difference of m and other. The currencies must match and
// the difference must be non-negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, m.amount, other.amount)
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// Mul returns m scaled by factor, which must be non-negative.
func (m Money) Mul(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeFactor, factor)
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency}, nil
}

// MulString parses factor as a decimal string and multiplies by it.
func (m Money) MulString(factor string) (Money, error) {
	f, err := decimal.NewFromString(factor)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidFactor, factor)
	}
	return m.Mul(f)
}

// Div returns m divided by divisor, which must be positive. The quotient is
// computed at the decimal engine's default precision.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivideByZero
	}
	if divisor.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeDivisor, divisor)
	}
	return Money{amount: m.amount.Div(divisor), currency: m.currency}, nil
}

// DivString parses divisor as a decimal string and divides by it.
func (m Money) DivString(divisor string) (Money, error) {
	d, err := decimal.NewFromString(divisor)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidDivisor, divisor)
	}
	return m.Div(d)
}

// Equals reports whether other is a Money with an equal amount and the same
// currency. Amount equality is by value, so 0.3 and 0.30 are equal. A
// non-Money comparand is unequal, never an error.
func (m Money) Equals(other domain.ValueObject) bool {
	o, ok := other.(Money)
	if !ok {
		return false
	}
	return m.currency == o.currency && m.amount.Equal(o.amount)
}

// Compare orders m against other. A non-Money comparand yields
// (Unordered, nil): it has no place in the ordering, but that is not an
// error. Two Moneys in different currencies yield Unordered together with
// ErrCurrencyMismatch. The two modes are deliberately distinct.
func (m Money) Compare(other domain.ValueObject) (Ordering, error) {
	o, ok := other.(Money)
	if !ok {
		return Unordered, nil
	}
	if m.currency != o.currency {
		return Unordered, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	switch m.amount.Cmp(o.amount) {
	case -1:
		return Less, nil
	case 1:
		return Greater, nil
	default:
		return Equal, nil
	}
}

// Hash returns a 64-bit hash derived from the (amount, currency) pair.
// Equal Moneys hash equal: the amount is hashed in its normalized rational
// form, so representations like 0.3 and 0.30 collapse to one key. Money
// holds a decimal and is therefore not usable as a map key directly; use
// Hash when a key is needed.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.currency))
	h.Write([]byte{0})
	h.Write([]byte(m.amount.Rat().RatString()))
	return h.Sum64()
}

// String formats the value as "<CUR> <amount>" with exactly two decimal
// places, rounding half-up: 1234.567 becomes "USD 1234.57".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(2))
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON encodes the value as {"amount":"<decimal>","currency":"<code>"}.
// The amount keeps full precision; it is not the rounded display form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.String(), Currency: m.currency})
}

// UnmarshalJSON decodes through the constructors, so a decoded Money
// satisfies the same invariants as a constructed one.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewFromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
