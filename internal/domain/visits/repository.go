package visits

import "context"

type Repository interface {
	Insert(ctx context.Context, v Visit) error

	// List devuelve todas las visitas ordenadas por fecha descendente.
	List(ctx context.Context) ([]Visit, error)
}
