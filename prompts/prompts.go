package prompts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm asks a yes/no question on stderr, defaulting to no. It keeps asking
// until the answer is understood or input ends.
func Confirm(message string) bool {
	return ConfirmFrom(bufio.NewReader(os.Stdin), os.Stderr, message)
}

func ConfirmFrom(in *bufio.Reader, out io.Writer, message string) bool {
	for {
		userInput, err := PromptFrom(in, out, fmt.Sprintf("%s (y/N) ", message))
		switch strings.ToLower(userInput) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
		if err != nil {
			return false
		}
	}
}

// PromptFrom writes message to out and reads one trimmed line from in.
func PromptFrom(in *bufio.Reader, out io.Writer, message string) (string, error) {
	fmt.Fprint(out, message)
	input, err := in.ReadString('\n')
	return strings.TrimSpace(input), err
}
