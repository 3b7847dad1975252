package tac

import "fmt"

// Allocator hands out the names of temporaries and labels.
// Temporaries are scoped to a statement and labels to a whole analysis,
// so the two counters are reset independently.
type Allocator struct {
	temporaryIndex int
	labelIndex     int
}

// NewAllocator returns an Allocator starting at T0 and L0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NewTemporary returns the next unused temporary name.
func (a *Allocator) NewTemporary() string {
	name := fmt.Sprintf("T%d", a.temporaryIndex)
	a.temporaryIndex++
	return name
}

// ResetTemporaries makes the next temporary T0 again.
func (a *Allocator) ResetTemporaries() {
	a.temporaryIndex = 0
}

// NewLabel returns the next unused label name.
func (a *Allocator) NewLabel() string {
	name := fmt.Sprintf("L%d", a.labelIndex)
	a.labelIndex++
	return name
}

// ResetLabels makes the next label L0 again.
func (a *Allocator) ResetLabels() {
	a.labelIndex = 0
}
