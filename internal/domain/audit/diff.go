// Package audit construye las descripciones legibles del log de actividad.
// Un Diff acumula cambios campo a campo comparando valor anterior y nuevo;
// cada campo aporta su formato (texto plano, referencia resuelta por nombre,
// imagen cualitativa, precio) y los campos sin cambio no aportan nada.
package audit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// None es el marcador visible para valores ausentes en el diff.
const None = "none"

// Diff acumula los cambios de una actualización para describirla en el log.
type Diff struct {
	changes []string
}

// Text registra un cambio de campo textual como `campo: "viejo" → "nuevo"`.
// No registra nada si los valores coinciden.
func (d *Diff) Text(field, oldVal, newVal string) {
	if oldVal == newVal {
		return
	}
	d.changes = append(d.changes, fmt.Sprintf("%s: %q → %q", field, oldVal, newVal))
}

// Ref registra el cambio de una referencia (FK) usando los nombres resueltos
// de las entidades relacionadas, nunca sus ids crudos.
func (d *Diff) Ref(field, oldName, newName string) {
	if oldName == "" {
		oldName = None
	}
	if newName == "" {
		newName = "unknown"
	}
	d.Text(field, oldName, newName)
}

// Image registra el cambio de un campo de imagen con etiqueta cualitativa
// (added / updated / removed) en lugar de las URLs crudas.
func (d *Diff) Image(oldURL, newURL *string) {
	oldSet := oldURL != nil && *oldURL != ""
	newSet := newURL != nil && *newURL != ""
	switch {
	case oldSet && newSet && *oldURL != *newURL:
		d.changes = append(d.changes, "image: updated")
	case !oldSet && newSet:
		d.changes = append(d.changes, "image: added")
	case oldSet && !newSet:
		d.changes = append(d.changes, "image: removed")
	}
}

// Price registra un cambio de precio con dos decimales fijos.
func (d *Diff) Price(oldPrice, newPrice *decimal.Decimal) {
	d.Text("price", priceString(oldPrice), priceString(newPrice))
}

// Empty indica si ningún campo cambió.
func (d *Diff) Empty() bool {
	return len(d.changes) == 0
}

// Suffix devuelve " (cambio1, cambio2)" o cadena vacía si no hubo cambios,
// listo para concatenar a la descripción base.
func (d *Diff) Suffix() string {
	if d.Empty() {
		return ""
	}
	return " (" + strings.Join(d.changes, ", ") + ")"
}

// OrNone devuelve el valor apuntado o el marcador "none" si es nulo o vacío.
func OrNone(s *string) string {
	if s == nil || *s == "" {
		return None
	}
	return *s
}

func priceString(p *decimal.Decimal) string {
	if p == nil {
		return None
	}
	return p.StringFixed(2)
}
