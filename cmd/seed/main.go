// seed siembra la tabla permissions a partir del catálogo estático de la
// aplicación. Idempotente: las keys existentes conservan su ID (los grants no
// se invalidan) y solo se refrescan nombre, categoría y descripción.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	catalog := authz.NewCatalog()
	var perms []*entity.Permission
	for _, category := range catalog.Categories() {
		for _, f := range catalog.PermissionsByCategory(category) {
			perms = append(perms, &entity.Permission{
				ID:       uuid.New().String(),
				Key:      f.Key,
				Name:     f.Name,
				Category: category,
			})
		}
	}

	permRepo := postgres.NewPermissionRepository(pool)
	if err := permRepo.Seed(perms); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar permisos: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sembrados %d permisos en %d categorías\n", len(perms), len(catalog.Categories()))
}
