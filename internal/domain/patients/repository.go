package patients

import "context"

type Repository interface {
	Insert(ctx context.Context, p Patient) error

	// Update reemplaza los campos mutables por id.
	// Cero filas afectadas (id inexistente) no es error: no-op.
	Update(ctx context.Context, p Patient) error

	// Delete borra el paciente y cascadea a sus visitas en forma atómica.
	// Id inexistente es un no-op inofensivo.
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, sort Sort) ([]Patient, error)
	Exists(ctx context.Context, id string) (bool, error)
}
