package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
// La visibilidad por tienda se resuelve en SQL: shop_id IS NULL (rol global)
// o shop_id igual a la tienda del llamador.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

const roleColumns = `id, shop_id, role_name, description, is_system, created_at, updated_at`

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (` + roleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.ShopID, role.Name, role.Description, role.IsSystem, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetVisible devuelve el rol solo si es global o pertenece a la tienda dada.
func (r *RoleRepo) GetVisible(id, shopID string) (*entity.Role, error) {
	query := `
		SELECT ` + roleColumns + ` FROM roles
		WHERE id = $1 AND (shop_id IS NULL OR shop_id = $2)`
	return r.scanOne(context.Background(), query, id, shopID)
}

// GetByNameInScope busca por nombre dentro de un scope exacto: nil compara
// contra roles globales, no-nil contra la tienda dada.
func (r *RoleRepo) GetByNameInScope(name string, shopID *string) (*entity.Role, error) {
	if shopID == nil {
		query := `SELECT ` + roleColumns + ` FROM roles WHERE role_name = $1 AND shop_id IS NULL`
		return r.scanOne(context.Background(), query, name)
	}
	query := `SELECT ` + roleColumns + ` FROM roles WHERE role_name = $1 AND shop_id = $2`
	return r.scanOne(context.Background(), query, name, *shopID)
}

func (r *RoleRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&role.ID, &role.ShopID, &role.Name, &role.Description, &role.IsSystem,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// ListByScope lista los roles del scope con su conteo de permisos.
func (r *RoleRepo) ListByScope(shopID *string) ([]*repository.RoleSummary, error) {
	query := `
		SELECT r.id, r.shop_id, r.role_name, r.description, r.is_system, r.created_at, r.updated_at,
			COUNT(rp.permission_id)
		FROM roles r
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		WHERE ($1::text IS NULL AND r.shop_id IS NULL) OR r.shop_id = $1
		GROUP BY r.id
		ORDER BY r.created_at`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*repository.RoleSummary
	for rows.Next() {
		var s repository.RoleSummary
		if err := rows.Scan(&s.Role.ID, &s.Role.ShopID, &s.Role.Name, &s.Role.Description,
			&s.Role.IsSystem, &s.Role.CreatedAt, &s.Role.UpdatedAt, &s.PermissionCount); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción del rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET role_name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina el rol; los grants caen en cascada (FK ON DELETE CASCADE).
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// PermissionsOf lista los permisos concedidos al rol.
func (r *RoleRepo) PermissionsOf(roleID string) ([]*entity.Permission, error) {
	query := `
		SELECT p.id, p.permission_key, p.permission_name, p.category, p.description
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.category, p.permission_key`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("permissions of role: %w", err)
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

// PermissionKeys resuelve las keys efectivas de un rol visible para la tienda.
// Es el camino caliente de autorización: un solo round-trip con la visibilidad
// incluida en el WHERE, un rol invisible devuelve cero filas.
func (r *RoleRepo) PermissionKeys(ctx context.Context, roleID, shopID string) ([]string, error) {
	query := `
		SELECT p.permission_key
		FROM roles r
		JOIN role_permissions rp ON rp.role_id = r.id
		JOIN permissions p ON p.id = rp.permission_id
		WHERE r.id = $1 AND (r.shop_id IS NULL OR r.shop_id = $2)`
	rows, err := r.q.Query(ctx, query, roleID, shopID)
	if err != nil {
		return nil, fmt.Errorf("permission keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan permission key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// ReplaceGrants reemplaza los grants al completo (delete + insert). Debe
// invocarse con un RoleRepo atado a una transacción (vía TxRunner) para que
// ningún lector observe el estado intermedio vacío.
func (r *RoleRepo) ReplaceGrants(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear grants: %w", err)
	}
	for _, permID := range permissionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`,
			roleID, permID,
		)
		if err != nil {
			return fmt.Errorf("insert grant: %w", err)
		}
	}
	return nil
}
