package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderIndexCoercion(t *testing.T) {
	assert.Equal(t, 3, orderIndexOf(float64(3)))
	assert.Equal(t, 3, orderIndexOf("3"))
	assert.Equal(t, 7, orderIndexOf(" 7 "))
	assert.Equal(t, 0, orderIndexOf("three"))
	assert.Equal(t, 0, orderIndexOf(nil))
	assert.Equal(t, 0, orderIndexOf(true))
}
