package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vault/internal/auth"
	"vault/internal/model"
	"vault/internal/repository"
)

// DemoAccount is a pre-seeded credential record for evaluation.
type DemoAccount struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     model.Role
	Password string
}

// DemoAccounts are created once at startup so every role can be exercised
// immediately. Fixed IDs keep re-seeding stable across environments.
var DemoAccounts = []DemoAccount{
	{ID: uuid.MustParse("3f1a6a5c-0000-4000-8000-000000000001"), Email: "admin@vault.io", Name: "System Admin", Role: model.RoleAdmin, Password: "demo"},
	{ID: uuid.MustParse("3f1a6a5c-0000-4000-8000-000000000002"), Email: "editor@vault.io", Name: "Content Editor", Role: model.RoleEditor, Password: "demo"},
	{ID: uuid.MustParse("3f1a6a5c-0000-4000-8000-000000000003"), Email: "viewer@vault.io", Name: "External Viewer", Role: model.RoleViewer, Password: "demo"},
}

// SeedDemoUsers creates the demo accounts that do not exist yet. It is
// invoked explicitly before the server starts accepting traffic and is
// idempotent: repeated runs never duplicate records.
func SeedDemoUsers(ctx context.Context, repo repository.UserRepository) (created int, err error) {
	for _, account := range DemoAccounts {
		existing, err := repo.FindByEmail(ctx, account.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check demo account %s: %w", account.Email, err)
		}
		if existing != nil {
			continue
		}

		digest, err := auth.HashPassword(account.Password)
		if err != nil {
			return created, fmt.Errorf("hash demo password: %w", err)
		}

		user := &model.User{
			ID:             account.ID,
			Email:          account.Email,
			Name:           account.Name,
			PasswordDigest: digest,
			Role:           account.Role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, fmt.Errorf("create demo account %s: %w", account.Email, err)
		}
		log.Printf("seeded demo account: %s (%s)", account.Email, account.Role)
		created++
	}
	return created, nil
}
