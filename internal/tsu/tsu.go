// Package tsu implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package tsu

import (
	"io"

	"go.followtheprocess.codes/log"
)

// Tsu represents the tsu program.
type Tsu struct {
	stdin   io.Reader   // Interactive input is read from here
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Logs and errors are written here
	logger  *log.Logger // The logger for the application
	version string      // The app version
}

// New returns a new [Tsu].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Tsu {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.Prefix("tsu"), log.WithLevel(level))

	return Tsu{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}
