package ports

import "context"

// KeyValueStore almacenamiento persistente clave-valor del lado cliente.
// La consola solo usa la clave del token.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Notifier efecto lateral disparado cuando cambia el tamaño de la lista de cotizaciones.
type Notifier interface {
	NewQuotes(ctx context.Context, count int)
}
