// seed-admin crea (o actualiza) el usuario administrador inicial.
//
// Uso: go run ./cmd/seed-admin -email admin@fabrica.local -password <pass> [-name Administrador]
// Lee la conexión a PostgreSQL de la misma configuración que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Fabrica-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "contraseña del administrador")
	name := flag.String("name", "Administrador", "nombre a mostrar")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "se requieren -email y -password")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	now := time.Now()

	// Idempotente: si el email ya existe se promueve a admin y se
	// restablece la contraseña; si no, se crea.
	if existing, err := users.FindByEmail(*email); err == nil && existing != nil {
		existing.PasswordHash = string(hash)
		existing.Name = *name
		existing.Role = entity.RoleAdmin
		existing.Status = "active"
		existing.UpdatedAt = now
		if err := users.Update(existing); err != nil {
			fmt.Fprintf(os.Stderr, "actualizar administrador: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("administrador actualizado: %s (%s)\n", *email, existing.ID)
		return
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(u); err != nil {
		fmt.Fprintf(os.Stderr, "crear administrador: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("administrador creado: %s (%s)\n", *email, u.ID)
}
