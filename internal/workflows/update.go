package workflows

import (
	"context"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
)

// UpdateOptions configures the update workflow. Nil fields are left unchanged.
type UpdateOptions struct {
	ID       int64
	Service  *string
	Login    *string
	Password *string
}

// UpdateResult contains the outcome of an update operation.
type UpdateResult struct {
	ID              int64
	Service         string
	Login           string
	PasswordChanged bool
}

// Update changes some fields of an existing record.
//
// When the password is not being changed the stored ciphertext is kept as
// is, so records that no longer decrypt under the active key can still be
// renamed, or repaired by giving them a new password.
func Update(ctx context.Context, v *Vault, opts UpdateOptions) (*UpdateResult, error) {
	if opts.Service == nil && opts.Login == nil && opts.Password == nil {
		return nil, kerrors.ErrNothingToUpdate
	}

	rec, err := v.Store.Get(ctx, opts.ID)
	if err != nil {
		return nil, err
	}

	service, login := rec.Service, rec.Login
	if opts.Service != nil {
		service = strings.TrimSpace(*opts.Service)
	}
	if opts.Login != nil {
		login = strings.TrimSpace(*opts.Login)
	}

	var password *string
	if opts.Password != nil {
		trimmed := strings.TrimSpace(*opts.Password)
		password = &trimmed
	}

	if err := checkRequired(service, login, password); err != nil {
		return nil, err
	}

	ciphertext := rec.Ciphertext
	if password != nil {
		ciphertext, err = v.Cipher.Encrypt(*password)
		if err != nil {
			return nil, fmt.Errorf("encrypting password: %w", err)
		}
	}

	if err := v.Store.Update(ctx, rec.ID, service, login, ciphertext); err != nil {
		return nil, err
	}

	return &UpdateResult{
		ID:              rec.ID,
		Service:         service,
		Login:           login,
		PasswordChanged: password != nil,
	}, nil
}
