package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository sobre PostgreSQL.
// Los permisos son data de referencia: se siembran en deploy (cmd/seed) y solo
// se leen en runtime.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador de persistencia para permisos.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

const permissionColumns = `id, permission_key, permission_name, category, description`

// ListAll lista el catálogo completo persistido.
func (r *PermissionRepo) ListAll() ([]*entity.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions ORDER BY category, permission_key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Key, &p.Name, &p.Category, &p.Description); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByIDs devuelve solo los permisos existentes entre los IDs pedidos.
func (r *PermissionRepo) GetByIDs(ids []string) ([]*entity.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get permissions by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Key, &p.Name, &p.Category, &p.Description); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Seed inserta las filas del catálogo que falten. Idempotente por key: las
// existentes se actualizan, nunca se borran.
func (r *PermissionRepo) Seed(perms []*entity.Permission) error {
	ctx := context.Background()
	for _, p := range perms {
		_, err := r.q.Exec(ctx, `
			INSERT INTO permissions (id, permission_key, permission_name, category, description)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (permission_key) DO UPDATE
			SET permission_name = EXCLUDED.permission_name,
				category = EXCLUDED.category,
				description = EXCLUDED.description`,
			p.ID, p.Key, p.Name, p.Category, p.Description,
		)
		if err != nil {
			return fmt.Errorf("seed permission %s: %w", p.Key, err)
		}
	}
	return nil
}
