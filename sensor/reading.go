package sensor

import (
	"context"
	"time"
)

// Reading is a single value taken from the sensor file.
type Reading struct {
	Value      int
	Raw        string
	ObservedAt time.Time
}

type Source interface {
	Read(ctx context.Context) (Reading, error)
}
