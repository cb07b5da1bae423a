package phrases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	p := NewProvider("первая\nстрока\n---\n\n---\nвторая\r\n --- \nтретья")

	assert.Equal(t, 3, p.Len())
	assert.Contains(t, []string{"первая\nстрока", "вторая", "третья"}, p.Next())
}

func TestNext_EmptyPool(t *testing.T) {
	p := NewProvider("  \n---\n")

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, DefaultGreeting, p.Next())
}

func TestWelcomeProvider(t *testing.T) {
	p := NewWelcomeProvider()

	assert.Greater(t, p.Len(), 1)
	for i := 0; i < 20; i++ {
		assert.NotEmpty(t, p.Next())
	}
}
