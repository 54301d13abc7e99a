package cycle

import "errors"

// ErrAlreadyCommitted is returned when adding actions to or committing a
// cycle that has already been committed.
var ErrAlreadyCommitted = errors.New("cycle already committed")
