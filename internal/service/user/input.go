package user

import (
	"regexp"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Username string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !usernameRe.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-32 characters: letters, digits, _ or -"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
