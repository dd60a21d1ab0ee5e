package workflows

import (
	"context"
	"fmt"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Service  string
	Login    string
	Password string
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	ID      int64
	Service string
	Login   string
}

// Add validates the credential, encrypts its password and stores it.
//
// Returns a *ValidationError (matching ErrValidation) if any field is empty;
// nothing is written in that case.
func Add(ctx context.Context, v *Vault, opts AddOptions) (*AddResult, error) {
	cred, err := ValidateCredential(opts.Service, opts.Login, opts.Password)
	if err != nil {
		return nil, err
	}

	ciphertext, err := v.Cipher.Encrypt(cred.Password)
	if err != nil {
		return nil, fmt.Errorf("encrypting password: %w", err)
	}

	id, err := v.Store.Insert(ctx, cred.Service, cred.Login, ciphertext)
	if err != nil {
		return nil, err
	}

	return &AddResult{ID: id, Service: cred.Service, Login: cred.Login}, nil
}
