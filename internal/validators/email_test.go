package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailWellFormed(t *testing.T) {
	assert.True(t, IsEmailWellFormed("ana@example.com"))
	assert.True(t, IsEmailWellFormed("first.last@sub.domain.co"))

	assert.False(t, IsEmailWellFormed("no-at-sign"))
	assert.False(t, IsEmailWellFormed("@example.com"))
	assert.False(t, IsEmailWellFormed("ana@"))
	assert.False(t, IsEmailWellFormed("ana@localhost"))
	assert.False(t, IsEmailWellFormed("ana maria@example.com"))
}
