// Package cli provides the interactive surface of the sortkit command.
package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/sortkit/sortkit/item"
)

// ErrNoInput is returned when the user aborts the prompt (Ctrl-C or EOF)
// without entering anything.
var ErrNoInput = errors.New("no input provided")

// PromptItems reads a comma-separated list of items from the terminal and
// parses each token. The prompt re-asks until the input is non-blank.
func PromptItems(label string) ([]item.Item, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("you must enter at least one item")
			}

			return nil
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	raw, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil, ErrNoInput
		}

		return nil, err
	}

	return item.ParseAll(strings.Split(raw, ",")), nil
}
