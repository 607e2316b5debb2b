// Package cart is the cart engine: a closed set of operations and a pure
// transition function from (state, operation) to the next state.
package cart

import "storefront/internal/domain/entity"

// Operation is one cart transition. The set is closed: only the types in this file implement it.
type Operation interface {
	// Persisted reports whether the transition changes the stored line sequence.
	Persisted() bool
	operation()
}

// AddLine adds Quantity units of a (product, size, color) selection.
type AddLine struct {
	Product  entity.Product
	Size     string
	Color    string
	Quantity int
}

// RemoveLine deletes the line with LineID; absent lines are ignored.
type RemoveLine struct {
	LineID string
}

// SetQuantity replaces a line's quantity; values <= 0 remove the line.
type SetQuantity struct {
	LineID   string
	Quantity int
}

// Clear empties the cart.
type Clear struct{}

// ToggleVisibility flips the cart panel flag.
type ToggleVisibility struct{}

// Load replaces the lines with a restored sequence.
type Load struct {
	Lines []entity.CartLineItem
}

func (AddLine) operation()          {}
func (RemoveLine) operation()       {}
func (SetQuantity) operation()      {}
func (Clear) operation()            {}
func (ToggleVisibility) operation() {}
func (Load) operation()             {}

func (AddLine) Persisted() bool          { return true }
func (RemoveLine) Persisted() bool       { return true }
func (SetQuantity) Persisted() bool      { return true }
func (Clear) Persisted() bool            { return true }
func (ToggleVisibility) Persisted() bool { return false }

// Persisted is false for Load: restored lines are already in storage.
func (Load) Persisted() bool { return false }
