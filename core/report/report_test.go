package report_test

import (
	"testing"

	"vapor-store/core/report"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var b report.Builder
		assert.Equal(t, "", b.String())
		assert.Empty(t, b.Lines())
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		var b report.Builder
		b.Addf(report.GameAdded, "Foo", "RPG", 2)
		b.Invalid()
		b.Addf(report.UserImported, "kcarroll", 3)
		b.Addf(report.PurchaseImported, "Foo", "kcarroll")

		assert.Equal(t, "Added Foo (RPG) with 2 tags\nInvalid Data\nImported kcarroll with 3 cards\nImported Foo for kcarroll", b.String())
		assert.Equal(t, 3, b.Accepted())
		assert.Equal(t, 1, b.Rejected())
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		var b report.Builder
		b.Invalid()
		assert.Equal(t, "Invalid Data", b.String())
	})
}
