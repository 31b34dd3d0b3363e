package inventory

import "time"

// Clock fuente de la fecha actual; inyectable para fijar lastUpdated en tests.
type Clock func() time.Time
