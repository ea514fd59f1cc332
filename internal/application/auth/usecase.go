package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/token"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// IssueFor emite un token de sesión para el usuario con su tienda actual.
// Única vía de emisión: también la usa la creación de tienda para reemitir
// el token con el shop_id nuevo.
func (c JWTConfig) IssueFor(u *entity.User) (string, error) {
	return token.Issue(c.Secret, token.Session{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		ShopID: u.ShopID,
	}, c.Issuer, c.ExpMinutes)
}

// AuthUseCase casos de uso de autenticación: signup, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	engine   *authz.Engine
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, engine *authz.Engine, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, engine: engine, jwtCfg: jwtCfg}
}

// Signup crea el dueño de la tienda: admin sin tienda todavía. El token sale
// con shop vacío; se reemite al crear la tienda en el onboarding.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         entity.RoleAdmin,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	tok, err := uc.jwtCfg.IssueFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "cuenta creada",
		Token:   tok,
		HasShop: false,
		User:    toUserResponse(user),
	}, nil
}

// Login verifica email/password y emite el token de sesión.
// "email desconocido" y "password incorrecto" devuelven el mismo error:
// ErrInvalidCredentials, sin distinción observable. La comparación del hash
// la hace bcrypt (tiempo constante); nunca comparar a mano.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := uc.jwtCfg.IssueFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "login exitoso",
		Token:   tok,
		HasShop: user.HasShop(),
		User:    toUserResponse(user),
	}, nil
}

// Me devuelve el perfil del usuario con su set efectivo de permisos, calculado
// fresco (sin caché) para que los cambios de rol apliquen de inmediato.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	set, err := uc.engine.PermissionsFor(ctx, user)
	if err != nil {
		return nil, err
	}
	out := &dto.MeResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           user.Role,
		RoleID:         user.RoleID,
		ShopID:         user.ShopID,
		PermissionKeys: set.Keys(),
		Authenticated:  true,
	}
	if user.RoleID != nil {
		role, err := uc.roleRepo.GetVisible(*user.RoleID, user.ShopID)
		if err != nil {
			return nil, err
		}
		if role != nil {
			out.RoleName = &role.Name
		}
	}
	return out, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		RoleID:   u.RoleID,
		ShopID:   u.ShopID,
	}
}
