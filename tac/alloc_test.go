package tac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "T0", a.NewTemporary())
	assert.Equal(t, "T1", a.NewTemporary())
	assert.Equal(t, "L0", a.NewLabel())
	assert.Equal(t, "T2", a.NewTemporary())

	a.ResetTemporaries()
	assert.Equal(t, "T0", a.NewTemporary())
	assert.Equal(t, "L1", a.NewLabel())

	a.ResetLabels()
	assert.Equal(t, "L0", a.NewLabel())
	assert.Equal(t, "T1", a.NewTemporary())
}

func TestAllocatorsAreIndependent(t *testing.T) {
	a, b := NewAllocator(), NewAllocator()
	a.NewLabel()
	a.NewTemporary()

	assert.Equal(t, "L0", b.NewLabel())
	assert.Equal(t, "T0", b.NewTemporary())
}
