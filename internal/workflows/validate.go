package workflows

import (
	"strings"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
)

// Credential is a validated, trimmed service/login/password triple.
type Credential struct {
	Service  string
	Login    string
	Password string
}

// ValidationError lists the required fields that were empty.
// It matches kerrors.ErrValidation with errors.Is.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return kerrors.ErrValidation.Error() + ": empty " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == kerrors.ErrValidation
}

// ValidateCredential trims all fields and rejects the credential if any is empty.
func ValidateCredential(service, login, password string) (Credential, error) {
	c := Credential{
		Service:  strings.TrimSpace(service),
		Login:    strings.TrimSpace(login),
		Password: strings.TrimSpace(password),
	}
	if err := checkRequired(c.Service, c.Login, &c.Password); err != nil {
		return Credential{}, err
	}
	return c, nil
}

// checkRequired reports which of the fields are empty. A nil password is not checked.
func checkRequired(service, login string, password *string) error {
	var missing []string
	if service == "" {
		missing = append(missing, "service")
	}
	if login == "" {
		missing = append(missing, "login")
	}
	if password != nil && *password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
