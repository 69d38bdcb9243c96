package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachment(t *testing.T) {
	assert.Equal(t, "attachment; filename=tax-invoice-INV-7.pdf", attachment("tax-invoice-INV-7.pdf"))
	assert.Equal(t, `attachment; filename="estimate EST 1.pdf"`, attachment("estimate EST 1.pdf"))
}
