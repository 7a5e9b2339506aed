package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyChange(t *testing.T) {
	assert.Equal(t, float64(0), weeklyChange(0, 0))
	assert.Equal(t, float64(100), weeklyChange(5, 0))
	assert.Equal(t, float64(100), weeklyChange(10, 5))
	assert.Equal(t, float64(-50), weeklyChange(5, 10))
	assert.Equal(t, float64(0), weeklyChange(7, 7))
}
