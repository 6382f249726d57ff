package catalog

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSKU genera un SKU determinístico cuando el cliente no envía uno:
// primeros 3 caracteres de la marca en mayúsculas, primeros 3 caracteres
// alfanuméricos del nombre en mayúsculas y el unix timestamp actual.
// Unicidad best-effort: dos altas en el mismo segundo con los mismos prefijos
// colisionan y la inserción falla por el constraint único.
func GenerateSKU(brand, name string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", prefix(brand), prefix(stripNonAlnum(name)), now.Unix())
}

// prefix toma hasta 3 caracteres y los pasa a mayúsculas.
func prefix(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// stripNonAlnum elimina todo lo que no sea A-Z, a-z o 0-9.
func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
