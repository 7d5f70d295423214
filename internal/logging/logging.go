// Package logging builds the logrus logger shared by the server and the
// keyword library.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at the given level. format is "text"
// or "json". stdout carries the protocol, so callers pass os.Stderr.
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return log, nil
}
