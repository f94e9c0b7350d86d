package steps

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/nodekit/scaffold/cli/util"
)

// consolePrompter asks a user in terminal.
type consolePrompter struct{}

// NewConsolePrompter creates new terminal prompter.
func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

// promptErr converts user interruption to command abort.
func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, io.EOF) {
		return util.ErrCmdAbort
	}
	return err
}

// Input asks for a text value.
func (consolePrompter) Input(label, defaultValue string,
	validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}
	input, err := prompt.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return input, nil
}

// Confirm asks a yes/no question.
func (consolePrompter) Confirm(label string, defaultValue bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultValue {
		prompt.Default = "y"
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, promptErr(err)
	}
	return true, nil
}

// Select asks to choose one of items.
func (consolePrompter) Select(label string, items []string) (string, error) {
	itemSelect := promptui.Select{
		Label:        label,
		Items:        items,
		HideSelected: true,
	}
	_, item, err := itemSelect.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return item, nil
}
