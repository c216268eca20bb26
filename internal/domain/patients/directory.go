package patients

import "context"

// Exists expone el chequeo de existencia para otros módulos (visits lo usa
// antes de insertar). Evita ciclos de imports entre módulos de dominio.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}
