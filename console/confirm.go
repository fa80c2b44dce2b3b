package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks prompt on out and reads a yes/no answer from in. Anything
// other than a yes, including a read error, is a no.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/n]: ", prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		fmt.Fprintln(out, "Error reading response:", err)
		return false
	}
	response = strings.TrimSpace(response)

	validResponses := []string{"yes", "yep", "y"}
	for _, vr := range validResponses {
		if strings.EqualFold(response, vr) {
			return true
		}
	}

	return false
}
