package quote

import (
	"net/url"
	"strings"

	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

const whatsAppBaseURL = "https://wa.me/"

// ContactURL enlace para responder al cliente: WhatsApp si hay teléfono, si no correo.
// wa.me solo acepta dígitos, así que se descartan espacios, guiones y el signo +.
func ContactURL(q entity.Quote) string {
	if phone := digitsOnly(q.Phone); phone != "" {
		return whatsAppBaseURL + phone
	}
	return (&url.URL{Scheme: "mailto", Opaque: strings.TrimSpace(q.Email)}).String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
