// internal/templates/templates_test.go
package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:       "$0.00",
		29.99:   "$29.99",
		999.99:  "$999.99",
		1059.97: "$1,059.97",
		1000000: "$1,000,000.00",
	}
	for amount, want := range cases {
		assert.Equal(t, want, formatMoney(amount))
	}
}

func TestLoadParsesAllViews(t *testing.T) {
	tmpl := Load()
	for _, name := range []string{"index.html", "product.html", "cart.html", "checkout.html", "order_success.html", "not_found.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
