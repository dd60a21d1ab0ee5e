package workflows

import (
	"context"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	IDs []int64
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	// Deleted lists the removed records in the order they were requested.
	Deleted []DeletedRecord
}

// DeletedRecord identifies a removed record.
type DeletedRecord struct {
	ID      int64
	Service string
	Login   string
}

// Delete removes the given records. Every id is checked before anything is
// deleted, so an unknown id leaves the vault untouched.
func Delete(ctx context.Context, v *Vault, opts DeleteOptions) (*DeleteResult, error) {
	seen := make(map[int64]bool, len(opts.IDs))
	var targets []DeletedRecord

	for _, id := range opts.IDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		rec, err := v.Store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, DeletedRecord{ID: rec.ID, Service: rec.Service, Login: rec.Login})
	}

	result := &DeleteResult{}
	for _, target := range targets {
		if err := v.Store.Delete(ctx, target.ID); err != nil {
			return result, err
		}
		result.Deleted = append(result.Deleted, target)
	}

	return result, nil
}
