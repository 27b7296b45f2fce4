package money

// Ordering is the result of comparing two value objects.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
	// Unordered means the comparands do not share an ordering domain
	// (the other value is not a Money). It is a result, not an error;
	// callers mapping orderings onto relational operators must treat it
	// as participating in none of them.
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}
