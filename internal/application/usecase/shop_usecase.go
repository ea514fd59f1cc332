package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ShopUseCase creación (una sola vez por admin), lectura y actualización de la tienda.
type ShopUseCase struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	jwtCfg   auth.JWTConfig
}

// NewShopUseCase construye el caso de uso de tiendas.
func NewShopUseCase(shopRepo repository.ShopRepository, userRepo repository.UserRepository, jwtCfg auth.JWTConfig) *ShopUseCase {
	return &ShopUseCase{shopRepo: shopRepo, userRepo: userRepo, jwtCfg: jwtCfg}
}

// Create crea la tienda del onboarding, asigna el shop_id al usuario y
// reemite el token de sesión con la tienda nueva. El cliente recibe el token
// fresco para no depender del fallback del resolver de tenencia.
// Un admin solo puede tener una tienda: si ya tiene, ErrConflict.
func (uc *ShopUseCase) Create(userID string, in dto.CreateShopRequest) (*dto.CreateShopResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.HasShop() {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	shop := &entity.Shop{
		ID:           uuid.New().String(),
		ShopName:     in.ShopName,
		OwnerName:    in.OwnerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		BusinessType: in.BusinessType,
		TaxID:        in.TaxID,
		Currency:     in.Currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.shopRepo.Create(shop); err != nil {
		return nil, err
	}
	if err := uc.userRepo.AssignShop(user.ID, shop.ID); err != nil {
		return nil, err
	}

	user.ShopID = shop.ID
	tok, err := uc.jwtCfg.IssueFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.CreateShopResponse{
		Message: "tienda creada",
		Shop:    toShopResponse(shop),
		Token:   tok,
	}, nil
}

// Info devuelve la tienda del llamador.
func (uc *ShopUseCase) Info(shopID string) (*dto.ShopResponse, error) {
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	out := toShopResponse(shop)
	return &out, nil
}

// Update actualiza los datos de la tienda desde settings.
func (uc *ShopUseCase) Update(shopID string, in dto.UpdateShopRequest) error {
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrNotFound
	}
	shop.ShopName = in.ShopName
	shop.OwnerName = in.OwnerName
	shop.Email = in.Email
	shop.Phone = in.Phone
	shop.Address = in.Address
	shop.City = in.City
	shop.State = in.State
	shop.ZipCode = in.ZipCode
	shop.Country = in.Country
	shop.BusinessType = in.BusinessType
	shop.TaxID = in.TaxID
	shop.Currency = in.Currency
	shop.UpdatedAt = time.Now()
	return uc.shopRepo.Update(shop)
}

func toShopResponse(s *entity.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ID:           s.ID,
		ShopName:     s.ShopName,
		OwnerName:    s.OwnerName,
		Email:        s.Email,
		Phone:        s.Phone,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		ZipCode:      s.ZipCode,
		Country:      s.Country,
		BusinessType: s.BusinessType,
		TaxID:        s.TaxID,
		Currency:     s.Currency,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
