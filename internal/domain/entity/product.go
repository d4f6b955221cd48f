package entity

import "github.com/shopspring/decimal"

// Product detalle de producto asociado a una cotización (por código).
// No se cachea: cada selección lo vuelve a pedir.
type Product struct {
	Name        string
	Type        string
	Description string
	Price       decimal.Decimal
	Offer       *decimal.Decimal // opcional
	Imagen      string           // opcional, imagen JPEG en base64
}

// HasOffer indica si la oferta debe mostrarse (presente y distinta de cero).
func (p Product) HasOffer() bool {
	return p.Offer != nil && !p.Offer.IsZero()
}
