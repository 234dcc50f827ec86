package main

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"skyline/internal/loader"
)

// errLoad marks every failure that happened while reading the input.
var errLoad = errors.New("load failed")

const (
	msgOpenFailed = "There was an error while opening the file, exiting.."
	msgReadFailed = "There was an error while reading the file, exiting.."
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ef4444"))

// userMessage maps an error to the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, loader.ErrFileNotFound):
		return msgOpenFailed
	case errors.Is(err, errLoad):
		return msgReadFailed
	default:
		return err.Error()
	}
}

func renderError(err error) string {
	return errorStyle.Render(userMessage(err))
}
