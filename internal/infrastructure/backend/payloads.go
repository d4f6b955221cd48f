package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// ── Estructuras del protocolo REST del backend ──────────────────────────────

type quotePayload struct {
	ID          flexInt    `json:"id"`
	Name        string     `json:"name"`
	Phone       flexString `json:"phone"`
	Email       string     `json:"email"`
	Date        flexTime   `json:"date"`
	Description string     `json:"description"`
	Quantity    flexInt    `json:"quantity"`
	ProductCode flexString `json:"productCode"`
	State       flexInt    `json:"state"`
}

func (p quotePayload) toEntity() entity.Quote {
	return entity.Quote{
		ID:          int64(p.ID),
		Name:        p.Name,
		Phone:       string(p.Phone),
		Email:       p.Email,
		Date:        time.Time(p.Date),
		Description: p.Description,
		Quantity:    int(p.Quantity),
		ProductCode: string(p.ProductCode),
		State:       entity.QuoteState(p.State),
	}
}

type productPayload struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Price       flexDecimal `json:"price"`
	Offer       flexDecimal `json:"offer"`
	Imagen      flexString  `json:"imagen"` // base64, se pasa tal cual a la vista
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Price:       p.Price.d,
		Offer:       p.Offer.ptr(),
		Imagen:      cleanImage(string(p.Imagen)),
	}
}

// cleanImage conserva la imagen solo si parece base64 (estándar o URL, con o sin relleno).
// Una imagen inválida se descarta sin afectar al resto del producto.
func cleanImage(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '-', c == '_', c == '=':
		default:
			return ""
		}
	}
	return s
}

// flexString acepta string, número o null (teléfonos y códigos a veces llegan numéricos).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// unquote devuelve el contenido de un string JSON; otros valores se devuelven tal cual.
func unquote(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '"' {
		return b
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	return []byte(strings.TrimSpace(s))
}

// flexInt entero que también acepta decimales (se truncan), strings numéricos y null.
// Un valor no numérico queda en cero en lugar de invalidar toda la respuesta.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	d, err := decimal.NewFromString(string(unquote(b)))
	if err != nil {
		return nil
	}
	*f = flexInt(d.IntPart())
	return nil
}

// flexDecimal número o string numérico. null, false, "" u otro valor lo dejan vacío.
type flexDecimal struct {
	d     decimal.Decimal
	valid bool
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	*f = flexDecimal{}
	d, err := decimal.NewFromString(string(unquote(b)))
	if err != nil {
		return nil
	}
	*f = flexDecimal{d: d, valid: true}
	return nil
}

func (f flexDecimal) ptr() *decimal.Decimal {
	if !f.valid {
		return nil
	}
	d := f.d
	return &d
}

// Formatos de fecha aceptados. Sin zona horaria se interpreta como hora local.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime fecha ISO-8601 (con o sin zona) o epoch en milisegundos.
// Un valor no reconocible queda en cero y se ordena al final.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = flexTime{}
		return nil
	}
	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			*f = flexTime{}
			return nil
		}
		*f = flexTime(time.UnixMilli(ms))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*f = flexTime(parseDate(strings.TrimSpace(s)))
	return nil
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
