package port

import "time"

// Clock supplies "now" for deadline checks. Injectable so tests can pin time.
type Clock interface {
	Now() time.Time
}
