package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/models"
)

// allowedBlockTypes is the exhaustive set of block types accepted by the
// validator. Any block type not present here is considered invalid.
var allowedBlockTypes = map[string]struct{}{
	models.BlockText:  {},
	models.BlockTask:  {},
	models.BlockEvent: {},
}

// allowedSignifiers is the set of recognised entry signifiers. The empty
// string (no signifier) is always allowed.
var allowedSignifiers = map[string]struct{}{
	models.SignifierPriority:    {},
	models.SignifierInspiration: {},
	models.SignifierExplore:     {},
}

// EntryValidator implements [Validator] for journal entries and their
// decrypted sync projections.
type EntryValidator struct{}

// NewEntryValidator constructs an EntryValidator and returns it as the
// Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches validation to the entry schema check. Supported types
// are [models.Entry], [models.DecryptedEntry], and pointers to either;
// anything else fails with [ErrUnsupportedType].
func (v *EntryValidator) Validate(_ context.Context, value any) error {
	switch e := value.(type) {
	case models.Entry:
		return v.validateEntry(e)
	case *models.Entry:
		return v.validateEntry(*e)
	case models.DecryptedEntry:
		return v.validateEntry(e.Entry)
	case *models.DecryptedEntry:
		return v.validateEntry(e.Entry)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *EntryValidator) validateEntry(e models.Entry) error {
	if e.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyEntryID)
	}

	if e.UpdatedAt <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrZeroUpdatedAt)
	}

	if _, err := time.Parse(time.DateOnly, e.Day); err != nil {
		return fmt.Errorf("%w: %w %q", ErrInvalidEntry, ErrInvalidDay, e.Day)
	}

	for _, b := range e.Blocks {
		if _, ok := allowedBlockTypes[b.Type]; !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidEntry, ErrInvalidBlockType, b.Type)
		}
	}

	for _, tag := range e.Tags {
		if tag == "" {
			return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTag)
		}
	}

	if e.Signifier != "" {
		if _, ok := allowedSignifiers[e.Signifier]; !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidEntry, ErrInvalidSignifier, e.Signifier)
		}
	}

	return nil
}
