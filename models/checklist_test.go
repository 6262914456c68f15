package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidChecklistCategory(t *testing.T) {
	assert.True(t, ValidChecklistCategory("Venue"))
	assert.True(t, ValidChecklistCategory("Honeymoon"))
	assert.False(t, ValidChecklistCategory("venue"), "enum é sensível a maiúsculas")
	assert.False(t, ValidChecklistCategory("Fireworks"))
	assert.False(t, ValidChecklistCategory(""))
}

func TestValidTaskPriority(t *testing.T) {
	for _, p := range []string{"low", "medium", "high"} {
		assert.True(t, ValidTaskPriority(p))
	}
	assert.False(t, ValidTaskPriority("urgent"))
	assert.False(t, ValidTaskPriority(""))
}

func TestValidRSVPStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "declined"} {
		assert.True(t, ValidRSVPStatus(s))
	}
	assert.False(t, ValidRSVPStatus("maybe"))
}

func TestValidVendorCategory(t *testing.T) {
	assert.True(t, ValidVendorCategory("Bakery"))
	assert.False(t, ValidVendorCategory("Fireworks"))
}

func TestValidBudgetCategory(t *testing.T) {
	assert.True(t, ValidBudgetCategory("Flowers"))
	assert.False(t, ValidBudgetCategory("Florist"), "enum de orçamento usa Flowers, não Florist")
}
