package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RoleUseCase CRUD de roles y reemplazo de grants. Los roles creados durante
// el onboarding (llamador aún sin tienda) quedan con shop nil ("globales");
// después se crean acotados a la tienda. La unicidad de nombre se valida
// dentro del mismo scope.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
	tx       GrantTxRunner
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository, tx GrantTxRunner) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, permRepo: permRepo, tx: tx}
}

// scopeOf devuelve el scope de roles del llamador: nil durante onboarding,
// su tienda después.
func scopeOf(user *entity.User) *string {
	if user.ShopID == "" {
		return nil
	}
	s := user.ShopID
	return &s
}

// Create crea un rol en el scope del llamador, con grants opcionales. Rol y
// grants se insertan en una sola transacción.
func (uc *RoleUseCase) Create(ctx context.Context, user *entity.User, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	scope := scopeOf(user)
	existing, err := uc.roleRepo.GetByNameInScope(in.RoleName, scope)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	permIDs, err := uc.validGrantIDs(in.Permissions)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		ShopID:      scope,
		Name:        in.RoleName,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunGrants(ctx, func(roles repository.RoleRepository) error {
		if err := roles.Create(role); err != nil {
			return err
		}
		if len(permIDs) > 0 {
			return roles.ReplaceGrants(role.ID, permIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, user, role.ID)
}

// Get devuelve el rol con sus permisos. Un rol de otra tienda es not-found:
// no se filtra si el ID existe en otro tenant.
func (uc *RoleUseCase) Get(_ context.Context, user *entity.User, roleID string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetVisible(roleID, user.ShopID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	perms, err := uc.roleRepo.PermissionsOf(role.ID)
	if err != nil {
		return nil, err
	}
	out := toRoleResponse(role)
	for _, p := range perms {
		out.Permissions = append(out.Permissions, toPermissionResponse(p))
	}
	return &out, nil
}

// List lista los roles del scope del llamador con su conteo de permisos.
func (uc *RoleUseCase) List(_ context.Context, user *entity.User) ([]dto.RoleListItem, error) {
	summaries, err := uc.roleRepo.ListByScope(scopeOf(user))
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleListItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.RoleListItem{
			ID:              s.Role.ID,
			ShopID:          s.Role.ShopID,
			RoleName:        s.Role.Name,
			Description:     s.Role.Description,
			IsSystem:        s.Role.IsSystem,
			PermissionCount: s.PermissionCount,
			CreatedAt:       s.Role.CreatedAt,
		})
	}
	return items, nil
}

// Update renombra/re-describe el rol y, si Permissions viene presente,
// reemplaza los grants al completo en la misma transacción. Reemplazar dos
// veces con el mismo set es idempotente.
func (uc *RoleUseCase) Update(ctx context.Context, user *entity.User, roleID string, in dto.UpdateRoleRequest) error {
	role, err := uc.roleRepo.GetVisible(roleID, user.ShopID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if in.RoleName != "" && in.RoleName != role.Name {
		dup, err := uc.roleRepo.GetByNameInScope(in.RoleName, role.ShopID)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrConflict
		}
		role.Name = in.RoleName
	}
	role.Description = in.Description
	role.UpdatedAt = time.Now()

	var permIDs []string
	if in.Permissions != nil {
		permIDs, err = uc.validGrantIDs(*in.Permissions)
		if err != nil {
			return err
		}
	}
	return uc.tx.RunGrants(ctx, func(roles repository.RoleRepository) error {
		if err := roles.Update(role); err != nil {
			return err
		}
		if in.Permissions != nil {
			return roles.ReplaceGrants(role.ID, permIDs)
		}
		return nil
	})
}

// Delete elimina el rol (los grants caen en cascada). Los roles de sistema
// no se eliminan nunca.
func (uc *RoleUseCase) Delete(_ context.Context, user *entity.User, roleID string) error {
	role, err := uc.roleRepo.GetVisible(roleID, user.ShopID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if role.IsSystem {
		return domain.ErrSystemRole
	}
	return uc.roleRepo.Delete(role.ID)
}

// validGrantIDs verifica que todos los IDs pedidos existan en el catálogo
// persistido. IDs desconocidos = entrada inválida, no se insertan a ciegas.
func (uc *RoleUseCase) validGrantIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	perms, err := uc.permRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(ids) {
		return nil, domain.ErrInvalidInput
	}
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, p.ID)
	}
	return out, nil
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          r.ID,
		ShopID:      r.ShopID,
		RoleName:    r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toPermissionResponse(p *entity.Permission) dto.PermissionResponse {
	return dto.PermissionResponse{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
	}
}
