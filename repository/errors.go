package repository

import (
	"fmt"
	"strings"

	"github.com/akinalp/parkapp/pkg"
)

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storeErr, SQL hatasını pkg.ErrStoreUnavailable ile sarar.
// errors.Is hem sentinel'i hem driver hatasını bulabilir.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", pkg.ErrStoreUnavailable, op, err)
}
