package dogs

import "context"

// Source entrega las filas crudas del dataset. Se lee una sola vez al arrancar.
type Source interface {
	Load(ctx context.Context) ([]RawDog, error)
}
