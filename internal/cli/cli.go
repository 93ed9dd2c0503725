// Package cli is the process boundary shared by the vertex commands:
// parse positional arguments, sample, print one value.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/zvertex/vertex"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Run samples one vertex for args (program name excluded) and writes it to
// stdout followed by a newline. On any failure nothing is written to stdout,
// a single diagnostic goes to stderr and ExitFailure is returned.
func Run(args []string, stdout, stderr io.Writer, s *vertex.Sampler) int {
	log := newLogger(stderr)

	req, err := vertex.ParseArgs(args, s.TargetAware())
	if err != nil {
		log.WithError(err).WithField("args", args).Error("cannot parse arguments")
		return ExitFailure
	}
	z, err := s.Eval(req)
	if err != nil {
		log.WithError(err).WithField("variations", s.Len()).Error("cannot sample vertex")
		return ExitFailure
	}
	if _, err = fmt.Fprintln(stdout, vertex.FormatValue(z)); err != nil {
		log.WithError(err).Error("cannot write result")
		return ExitFailure
	}
	return ExitSuccess
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.ErrorLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log
}
