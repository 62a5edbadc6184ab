// internal/templates/templates.go
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": formatMoney,
}

// Load parses the embedded view templates. Embedding keeps rendering
// independent of the process working directory.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))
}

func formatMoney(amount float64) string {
	// $1,059.97 style without a locale dependency
	totalCents := int64(amount*100 + 0.5)
	whole, cents := totalCents/100, totalCents%100

	var digits []byte
	for v, i := whole, 0; ; i++ {
		if i > 0 && i%3 == 0 {
			digits = append([]byte{','}, digits...)
		}
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
		if v == 0 {
			break
		}
	}

	s := strings.Builder{}
	s.WriteString("$")
	s.Write(digits)
	s.WriteByte('.')
	s.WriteByte(byte('0' + cents/10))
	s.WriteByte(byte('0' + cents%10))
	return s.String()
}
