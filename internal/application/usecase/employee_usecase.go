package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// EmployeeUseCase gestión de empleados de la tienda del admin. Los empleados
// nacen con role=employee y opcionalmente un rol RBAC de la misma tienda.
type EmployeeUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// Create crea un empleado en la tienda del llamador. El email es único global;
// el role_id, si viene, debe ser visible para esa tienda.
func (uc *EmployeeUseCase) Create(caller *entity.User, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if in.RoleID != nil && *in.RoleID != "" {
		role, err := uc.roleRepo.GetVisible(*in.RoleID, caller.ShopID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	emp := &entity.User{
		ID:           uuid.New().String(),
		ShopID:       caller.ShopID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         entity.RoleEmployee,
		RoleID:       in.RoleID,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(emp); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

// Get devuelve un empleado de la tienda del llamador; de otra tienda = not-found.
func (uc *EmployeeUseCase) Get(caller *entity.User, empID string) (*dto.EmployeeResponse, error) {
	emp, err := uc.visibleEmployee(caller, empID)
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

// List lista los empleados de la tienda con paginación.
func (uc *EmployeeUseCase) List(caller *entity.User, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.userRepo.ListByShop(caller.ShopID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toEmployeeResponse(u))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica un empleado. Password vacío conserva la contraseña; RoleID
// presente reasigna el rol (vacío = sin rol).
func (uc *EmployeeUseCase) Update(caller *entity.User, empID string, in dto.UpdateEmployeeRequest) error {
	emp, err := uc.visibleEmployee(caller, empID)
	if err != nil {
		return err
	}
	if in.FullName != "" {
		emp.FullName = in.FullName
	}
	if in.Email != "" && in.Email != emp.Email {
		dup, err := uc.userRepo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrDuplicateEmail
		}
		emp.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		emp.PasswordHash = string(hash)
	}
	if in.RoleID != nil {
		if *in.RoleID == "" {
			emp.RoleID = nil
		} else {
			role, err := uc.roleRepo.GetVisible(*in.RoleID, caller.ShopID)
			if err != nil {
				return err
			}
			if role == nil {
				return domain.ErrNotFound
			}
			emp.RoleID = in.RoleID
		}
	}
	emp.UpdatedAt = time.Now()
	return uc.userRepo.Update(emp)
}

// Delete elimina un empleado de la tienda. La propia cuenta del llamador no
// es borrable por esta vía: se reporta como not-found, igual que un empleado
// de otra tienda.
func (uc *EmployeeUseCase) Delete(caller *entity.User, empID string) error {
	if empID == caller.ID {
		return domain.ErrNotFound
	}
	emp, err := uc.visibleEmployee(caller, empID)
	if err != nil {
		return err
	}
	return uc.userRepo.Delete(emp.ID)
}

func (uc *EmployeeUseCase) visibleEmployee(caller *entity.User, empID string) (*entity.User, error) {
	emp, err := uc.userRepo.GetByID(empID)
	if err != nil {
		return nil, err
	}
	if emp == nil || caller.ShopID == "" || emp.ShopID != caller.ShopID {
		return nil, domain.ErrNotFound
	}
	return emp, nil
}

func toEmployeeResponse(u *entity.User) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}
