// Package testutil contiene dobles de prueba compartidos por los tests de la consola.
package testutil

import (
	"context"
	"sync"

	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// MemoryStore implementación en memoria de ports.KeyValueStore.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
	Err  error // si no es nil, todas las operaciones fallan con él
}

// NewMemoryStore crea un almacenamiento vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", false, m.Err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.data, key)
	return nil
}

// StateCall registro de una llamada a ChangeState.
type StateCall struct {
	Token string
	ID    int64
	State entity.QuoteState
}

// FakeGateway doble programable de ports.QuoteGateway y ports.AuthGateway.
type FakeGateway struct {
	mu sync.Mutex

	// ListFunc responde ListQuotes; por defecto devuelve Quotes.
	ListFunc func(ctx context.Context, token string) ([]entity.Quote, error)
	Quotes   []entity.Quote

	StateErr   error
	StateCalls []StateCall

	Products     map[string]*entity.Product
	ProductErr   error
	ProductCalls []string

	LoginToken string
	LoginErr   error
	LoginCalls int
}

// NewFakeGateway crea un gateway sin datos.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{Products: map[string]*entity.Product{}}
}

func (f *FakeGateway) ListQuotes(ctx context.Context, token string) ([]entity.Quote, error) {
	f.mu.Lock()
	fn := f.ListFunc
	quotes := append([]entity.Quote(nil), f.Quotes...)
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, token)
	}
	return quotes, nil
}

// SetQuotes reemplaza la colección devuelta por ListQuotes.
func (f *FakeGateway) SetQuotes(quotes []entity.Quote) {
	f.mu.Lock()
	f.Quotes = quotes
	f.mu.Unlock()
}

func (f *FakeGateway) ChangeState(_ context.Context, token string, id int64, state entity.QuoteState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StateCalls = append(f.StateCalls, StateCall{Token: token, ID: id, State: state})
	return f.StateErr
}

// StateCallsSnapshot copia de las llamadas a ChangeState.
func (f *FakeGateway) StateCallsSnapshot() []StateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StateCall(nil), f.StateCalls...)
}

func (f *FakeGateway) GetProductByCode(_ context.Context, _ string, code string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ProductCalls = append(f.ProductCalls, code)
	if f.ProductErr != nil {
		return nil, f.ProductErr
	}
	p, ok := f.Products[code]
	if !ok {
		return &entity.Product{Name: code}, nil
	}
	cp := *p
	return &cp, nil
}

// ProductCallsSnapshot copia de los códigos pedidos.
func (f *FakeGateway) ProductCallsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ProductCalls...)
}

func (f *FakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	return f.LoginToken, f.LoginErr
}

// CountingNotifier cuenta las notificaciones recibidas.
type CountingNotifier struct {
	mu     sync.Mutex
	Calls  int
	Counts []int
}

func (n *CountingNotifier) NewQuotes(_ context.Context, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Calls++
	n.Counts = append(n.Counts, count)
}

// CallCount número de notificaciones.
func (n *CountingNotifier) CallCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Calls
}
