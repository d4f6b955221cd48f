// Package quote contiene el tablero del asesor: la réplica local de las cotizaciones,
// el ciclo de sincronización contra el backend y las transiciones de estado.
package quote

import (
	"sort"
	"sync"

	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// Mensajes visibles en el tablero.
const (
	MsgNoToken      = "Token no disponible, por favor inicie sesión."
	MsgNoQuotes     = "No se encontraron cotizaciones."
	MsgFetchError   = "Error al cargar las cotizaciones."
	MsgProductError = "Error al obtener los detalles del producto"
)

// Status estado de una operación. Lista y producto tienen cada uno el suyo.
type Status struct {
	Loading bool
	Err     string
}

// Ticket identifica un despacho del polling. Solo se aplica si Gen sigue vigente
// y Seq es mayor que el último aplicado.
type Ticket struct {
	Gen uint64
	Seq uint64
}

// Snapshot copia profunda del tablero para renderizar.
type Snapshot struct {
	Quotes        []entity.Quote
	Active        *entity.Quote
	Product       *entity.Product
	List          Status
	ProductStatus Status
}

// FetchOutcome resultado de aplicar una respuesta del polling.
type FetchOutcome struct {
	Applied  bool // false si la respuesta era obsoleta o llegó tras el cierre
	Replaced bool // la lista cambió de tamaño y se reemplazó
	Count    int  // tamaño de la lista recibida
	// Err causa del mensaje de lista: el error de la consulta o domain.ErrNoQuotes.
	Err error
}

// Board estado en memoria del tablero. Seguro para uso concurrente:
// el timer y las acciones del operador escriben desde goroutines distintas.
type Board struct {
	mu sync.Mutex

	quotes  []entity.Quote
	active  *entity.Quote
	product *entity.Product
	list    Status
	prod    Status

	gen         uint64
	seq         uint64
	lastApplied uint64
	selection   uint64
}

// NewBoard crea un tablero en estado inicial (lista cargando).
func NewBoard() *Board {
	return &Board{list: Status{Loading: true}}
}

// Reset vuelve al estado inicial e invalida los despachos en vuelo.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.quotes = nil
	b.active = nil
	b.product = nil
	b.list = Status{Loading: true}
	b.prod = Status{}
	b.gen++
	b.selection++
}

// Invalidate descarta las respuestas de despachos anteriores sin tocar el estado visible.
func (b *Board) Invalidate() {
	b.mu.Lock()
	b.gen++
	b.mu.Unlock()
}

// NextTicket reserva el siguiente número de secuencia para un despacho.
func (b *Board) NextTicket() Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return Ticket{Gen: b.gen, Seq: b.seq}
}

// SetListError fija el error de la lista y termina la carga; la lista no se toca.
func (b *Board) SetListError(msg string) {
	b.mu.Lock()
	b.list = Status{Err: msg}
	b.mu.Unlock()
}

// ApplyFetch aplica la respuesta de un despacho.
//
// Detección de cambios por tamaño: si la colección ordenada tiene otro tamaño que la
// actual se reemplaza; si tiene el mismo, se descarta aunque el contenido difiera.
// Vacía o con error: se fija el mensaje y la lista anterior sigue visible.
func (b *Board) ApplyFetch(t Ticket, quotes []entity.Quote, fetchErr error) FetchOutcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	if t.Gen != b.gen || t.Seq <= b.lastApplied {
		return FetchOutcome{}
	}
	b.lastApplied = t.Seq
	out := FetchOutcome{Applied: true, Count: len(quotes)}

	switch {
	case fetchErr != nil:
		b.list = Status{Err: MsgFetchError}
		out.Err = fetchErr
	case len(quotes) == 0:
		b.list = Status{Err: MsgNoQuotes}
		out.Err = domain.ErrNoQuotes
	default:
		sorted := SortByDateDesc(quotes)
		if len(sorted) != len(b.quotes) {
			b.quotes = sorted
			out.Replaced = true
		}
		b.list = Status{}
	}
	return out
}

// PatchState cambia el estado de una sola cotización en la lista y en la copia activa.
// Sin reordenar ni volver a consultar. Devuelve false si el id no está en el tablero.
func (b *Board) PatchState(id int64, state entity.QuoteState) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	found := false
	for i := range b.quotes {
		if b.quotes[i].ID == id {
			b.quotes[i].State = state
			found = true
		}
	}
	if b.active != nil && b.active.ID == id {
		b.active.State = state
		found = true
	}
	return found
}

// Find busca una cotización: primero la activa, luego la lista.
func (b *Board) Find(id int64) (entity.Quote, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active != nil && b.active.ID == id {
		return *b.active, true
	}
	for _, q := range b.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entity.Quote{}, false
}

// Select marca la cotización como activa y descarta el producto anterior.
func (b *Board) Select(id int64) (entity.Quote, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, q := range b.quotes {
		if q.ID == id {
			active := q
			b.active = &active
			b.product = nil
			b.prod = Status{}
			b.selection++
			return q, true
		}
	}
	return entity.Quote{}, false
}

// BeginProductFetch marca el producto como cargando y devuelve la selección que lo pide.
func (b *Board) BeginProductFetch() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prod = Status{Loading: true}
	return b.selection
}

// ApplyProduct aplica el detalle si la selección que lo pidió sigue activa.
func (b *Board) ApplyProduct(selection uint64, p *entity.Product, fetchErr error) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if selection != b.selection {
		return false
	}
	if fetchErr != nil {
		b.prod = Status{Err: MsgProductError}
		return true
	}
	b.product = p
	b.prod = Status{}
	return true
}

// Snapshot devuelve una copia profunda del estado.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Snapshot{
		Quotes:        append([]entity.Quote(nil), b.quotes...),
		List:          b.list,
		ProductStatus: b.prod,
	}
	if b.active != nil {
		a := *b.active
		s.Active = &a
	}
	if b.product != nil {
		p := *b.product
		if p.Offer != nil {
			offer := *p.Offer
			p.Offer = &offer
		}
		s.Product = &p
	}
	return s
}

// SortByDateDesc devuelve una copia ordenada de más reciente a más antigua.
// El orden se recalcula en cada consulta; los empates conservan el orden recibido.
func SortByDateDesc(quotes []entity.Quote) []entity.Quote {
	out := append([]entity.Quote(nil), quotes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
