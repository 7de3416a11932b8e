// Package mini implements a lightweight, minimalist interface for audiobook search and playback.
package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rymflux-cli/rymflux/color"
	"github.com/rymflux-cli/rymflux/icon"
	"github.com/rymflux-cli/rymflux/style"
	"github.com/rymflux-cli/rymflux/util"
	"github.com/samber/lo"
)

// ErrQuit signals a user-requested exit from any prompt.
var ErrQuit = errors.New("quit")

const quitOption = "Quit"

// title prints a section banner.
func title(s string) {
	fmt.Println(style.Title(s))
}

// progress prints an ephemeral status line and returns its eraser.
func progress(msg string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), msg))
}

// fail prints a non-fatal error line.
func fail(msg string) {
	fmt.Println(style.Fg(color.Red)(fmt.Sprintf("%s %s", icon.Get(icon.Fail), msg)))
}

// menu shows a selection prompt over the given items plus any extra actions,
// with a trailing quit option. Returns the picked item or the picked action
// string.
func menu[T fmt.Stringer](message string, items []T, actions ...string) (picked T, action string, err error) {
	options := lo.Map(items, func(item T, _ int) string {
		return item.String()
	})
	options = append(options, actions...)
	options = append(options, quitOption)

	var idx int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}

	if err = survey.AskOne(prompt, &idx); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			err = ErrQuit
		}
		return
	}

	switch {
	case idx < len(items):
		picked = items[idx]
	case options[idx] == quitOption:
		err = ErrQuit
	default:
		action = options[idx]
	}
	return
}

// getInput prompts for a line of text, offering historical query suggestions.
func getInput(message string, suggest func(string) []string, validate func(string) bool) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Suggest: suggest,
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(answer interface{}) error {
		s, _ := answer.(string)
		if !validate(s) {
			return errors.New("invalid input")
		}
		return nil
	}))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrQuit
		}
		return "", err
	}

	return value, nil
}
