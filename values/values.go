// Package values classifies Go values into SQL expression fragments and
// derives the named placeholders that carry bound values.
//
// Classification is deliberately asymmetric: nils, booleans, and numerics
// are inlined as literals, while everything else becomes an @-prefixed
// named parameter resolved by the execution layer.
package values

// Context selects the placeholder prefix for a bound value. A field may be
// registered in both contexts at once; the prefixes keep the resulting
// placeholder names from colliding.
type Context int

const (
	// Insert names placeholders for the column value list.
	Insert Context = iota
	// Update names placeholders for the ON DUPLICATE KEY UPDATE clause.
	Update
)

// Parameter is a placeholder name bound to the original Go value. The name
// includes the @ prefix exactly as it appears in the rendered statement.
type Parameter struct {
	Name  string
	Value any
}
