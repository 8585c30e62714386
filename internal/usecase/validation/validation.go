// Package validation holds the input rules shared by every usecase, whatever
// the caller: HTTP handlers, the seeder or matchctl.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Email reports whether s is a bare address such as "ops@example.com".
// Display-name forms and addresses without a domain are rejected.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}
