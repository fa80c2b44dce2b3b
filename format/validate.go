package format

import (
	"fmt"
	"strings"
)

var TimeFormats = []string{TimeHM, TimeM, TimeClock}

func ValidateTimeFormat(format string) error {
	for _, vf := range TimeFormats {
		if format == vf {
			return nil
		}
	}

	return fmt.Errorf("invalid time format %q - Valid formats: %s", format, strings.Join(TimeFormats, ", "))
}
