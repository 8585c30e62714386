package seeder

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/database"
	"skill-matrix/internal/usecase/validation"

	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the operator account when Email and Password are set.
type AdminSeeder struct {
	Email    string
	Password string
}

func (AdminSeeder) Name() string { return "admin" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(s.Email))
	if email == "" && s.Password == "" {
		return nil
	}
	if !validation.Email(email) || len(s.Password) < 8 {
		return errors.New("admin seeder needs a valid email and a password of at least 8 characters")
	}

	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		email, string(hash),
	)
	return err
}
