package entity

import "time"

// QuoteState estado ordinal de una cotización (1..4).
type QuoteState int

const (
	StateSent      QuoteState = 1 // Enviado
	StateReceived  QuoteState = 2 // Recibido
	StateResponded QuoteState = 3 // Respondido
	StateRejected  QuoteState = 4 // Rechazado
)

var stateLabels = [...]string{"Enviado", "Recibido", "Respondido", "Rechazado"}

// Valid indica si el estado pertenece a la enumeración cerrada.
func (s QuoteState) Valid() bool {
	return s >= StateSent && s <= StateRejected
}

// Label etiqueta visible del estado; vacío si el estado no es válido.
func (s QuoteState) Label() string {
	if !s.Valid() {
		return ""
	}
	return stateLabels[s-1]
}

// CSSClass clase del ítem en el buzón. Enviado no lleva clase.
func (s QuoteState) CSSClass() string {
	switch s {
	case StateReceived:
		return "received"
	case StateResponded:
		return "responded"
	case StateRejected:
		return "rejected"
	default:
		return ""
	}
}

// Quote solicitud de cotización de un cliente.
// ID es único y estable; ProductCode enlaza con Product.
type Quote struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Date        time.Time
	Description string
	Quantity    int
	ProductCode string
	State       QuoteState
}
