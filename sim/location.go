// Package sim implements the habitat simulation engine: the spatial field,
// organism lifecycles, feeding strategies, the population factory, and the
// per-day simulation driver.
package sim

import "fmt"

// Location is an immutable (row, col) position on the field.
type Location struct {
	Row int
	Col int
}

// String renders the location for logs and test failures.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}
