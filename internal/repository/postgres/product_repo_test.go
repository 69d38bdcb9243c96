package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "widget", escapeLike("widget"))
	assert.Equal(t, `50\% off\_x`, escapeLike("50% off_x"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
