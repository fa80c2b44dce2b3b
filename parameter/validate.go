package parameter

import (
	"fmt"
	"strings"

	"github.com/sporadisk/worktock/format"
)

// Validate returns the option param names, ignoring case and surrounding
// space.
func Validate(param string, validOptions []string) (string, error) {
	cleanParam := format.CleanParam(param)

	for _, option := range validOptions {
		if strings.EqualFold(cleanParam, option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}
