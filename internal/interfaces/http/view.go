package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/quote"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateLayout = "02/01/2006 15:04"

var pricePrinter = message.NewPrinter(language.Spanish)

// toDashboardView convierte la instantánea del tablero en la vista.
func toDashboardView(s quote.Snapshot) dto.DashboardView {
	v := dto.DashboardView{
		Quotes:        make([]dto.QuoteView, 0, len(s.Quotes)),
		List:          toStatus(s.List),
		ProductStatus: toStatus(s.ProductStatus),
	}
	for _, q := range s.Quotes {
		v.Quotes = append(v.Quotes, toQuoteView(q))
	}
	if s.Active != nil {
		a := toQuoteView(*s.Active)
		v.Active = &a
	}
	if s.Product != nil {
		v.Product = toProductView(*s.Product)
	}
	return v
}

func toStatus(s quote.Status) dto.StatusDTO {
	return dto.StatusDTO{Loading: s.Loading, Error: s.Err}
}

func toQuoteView(q entity.Quote) dto.QuoteView {
	return dto.QuoteView{
		ID:          q.ID,
		Name:        q.Name,
		Phone:       q.Phone,
		Email:       q.Email,
		Date:        formatDate(q.Date),
		Description: q.Description,
		Quantity:    q.Quantity,
		ProductCode: q.ProductCode,
		State:       int(q.State),
		StateLabel:  q.State.Label(),
		StateClass:  q.State.CSSClass(),
	}
}

func toProductView(p entity.Product) *dto.ProductView {
	v := &dto.ProductView{
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Price:       formatPrice(p.Price),
	}
	if p.HasOffer() {
		v.Offer = formatPrice(*p.Offer)
	}
	if p.Imagen != "" {
		v.ImageURI = "data:image/jpeg;base64," + p.Imagen
	}
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

// formatPrice precio con separadores en español y dos decimales, sin pasar por float64.
// La parte entera se agrupa con x/text; los decimales salen del propio decimal.
func formatPrice(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = pricePrinter.Sprint(number.Decimal(n))
	}
	return "$ " + sign + grouped + "," + frac
}
