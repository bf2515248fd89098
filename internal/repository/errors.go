package repository

import "errors"

// ErrNotAcknowledged is returned when an insert completed without error but
// the database did not report exactly one affected row. Callers treat it as
// a total write failure; no partial state is visible.
var ErrNotAcknowledged = errors.New("insert not acknowledged")
