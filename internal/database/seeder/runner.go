package seeder

import (
	"context"
	"fmt"

	"skill-matrix/internal/database"
)

type Runner struct {
	Seeders []Seeder
	// OnDone is called with each seeder's name after it succeeds.
	OnDone func(name string)
}

// Run executes seeders in order and stops at the first failure. Every seeder
// is idempotent, so a partial run can simply be repeated.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.OnDone != nil {
			r.OnDone(s.Name())
		}
	}
	return nil
}
