package scratch

import (
	"github.com/pkg/errors"

	"github.com/scratchfs/scratch/internal/mktemp"
)

// ErrRetriesExhausted is returned when a unique temporary name could not be
// allocated within the attempt ceiling. It indicates either a pathologically
// full directory or an attacker occupying generated names.
var ErrRetriesExhausted = mktemp.ErrRetriesExhausted

// ErrPermissionsUnsupported is returned on platforms without POSIX
// permissions when a restrictive permission set is requested.
var ErrPermissionsUnsupported = errors.New("restrictive permissions are not supported on this platform")
