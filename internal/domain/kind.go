package domain

// Kind selects how a product tracks stock
type Kind string

const (
	KindStandard   Kind = "standard"
	KindNonStocked Kind = "non_stocked"
	KindLimited    Kind = "limited"
)

// IsStocked reports whether purchases draw down the product's quantity
func (k Kind) IsStocked() bool {
	return k == KindStandard || k == KindLimited
}

// String representation (for logging)
func (k Kind) String() string {
	return string(k)
}
