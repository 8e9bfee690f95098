package sensor

import (
	"fmt"

	"github.com/pkg/errors"
)

type Layout string

const (
	Classic  Layout = "classic"
	Detailed Layout = "detailed"
)

func ParseLayout(name string) (Layout, error) {
	switch Layout(name) {
	case Classic, Detailed:
		return Layout(name), nil
	case "":
		return Detailed, nil
	}

	return "", errors.Errorf("unknown layout %q", name)
}

func (l Layout) Render(reading Reading) string {
	if l == Classic {
		return fmt.Sprintf("Current temperature: %s°C", reading.Raw)
	}

	return fmt.Sprintf(
		"Temperature: %d°C<br/>Modification time: %s",
		reading.Value,
		ModificationTime(reading.ObservedAt),
	)
}
