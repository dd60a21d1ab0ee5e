package workflows

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/store"
)

// Entry is a stored record together with its decrypted password.
type Entry struct {
	store.Record

	// Password is empty when Err is set.
	Password string

	// Err is ErrKeyMismatch when the record cannot be decrypted with the
	// active key.
	Err error
}

// Readable reports whether the entry's password was decrypted.
func (e Entry) Readable() bool {
	return e.Err == nil
}

// ListOptions configures the list workflow.
type ListOptions struct {
	// Query filters records whose service or login contains it, ignoring case.
	Query string
}

// ListResult contains the decrypted records.
type ListResult struct {
	Entries []Entry

	// Unreadable counts entries that failed with ErrKeyMismatch.
	Unreadable int
}

// List decrypts and returns the stored records sorted by service and login.
//
// Records that do not decrypt under the active key are returned with Err set
// to ErrKeyMismatch. A corrupted key aborts the whole listing.
func List(ctx context.Context, v *Vault, opts ListOptions) (*ListResult, error) {
	records, err := v.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(opts.Query))
	result := &ListResult{}

	for _, rec := range records {
		if query != "" && !matches(rec, query) {
			continue
		}

		entry, err := decryptRecord(v, rec)
		if err != nil {
			return nil, err
		}
		if !entry.Readable() {
			result.Unreadable++
		}
		result.Entries = append(result.Entries, entry)
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i], result.Entries[j]
		if sa, sb := strings.ToLower(a.Service), strings.ToLower(b.Service); sa != sb {
			return sa < sb
		}
		if la, lb := strings.ToLower(a.Login), strings.ToLower(b.Login); la != lb {
			return la < lb
		}
		return a.ID < b.ID
	})

	return result, nil
}

// Get returns a single decrypted record.
//
// Returns ErrRecordNotFound for an unknown id and ErrKeyMismatch if the
// record cannot be decrypted with the active key.
func Get(ctx context.Context, v *Vault, id int64) (*Entry, error) {
	rec, err := v.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := decryptRecord(v, rec)
	if err != nil {
		return nil, err
	}
	if !entry.Readable() {
		return nil, fmt.Errorf("record %d: %w", id, entry.Err)
	}
	return &entry, nil
}

// decryptRecord returns an error only when decryption failed for a reason
// other than a key mismatch.
func decryptRecord(v *Vault, rec store.Record) (Entry, error) {
	entry := Entry{Record: rec}

	plaintext, err := v.Cipher.Decrypt(rec.Ciphertext)
	switch {
	case err == nil:
		entry.Password = plaintext
	case errors.Is(err, kerrors.ErrKeyMismatch):
		entry.Err = err
	default:
		return Entry{}, fmt.Errorf("decrypting record %d: %w", rec.ID, err)
	}
	return entry, nil
}

func matches(rec store.Record, query string) bool {
	return strings.Contains(strings.ToLower(rec.Service), query) ||
		strings.Contains(strings.ToLower(rec.Login), query)
}
