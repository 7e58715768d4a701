package log

import (
	"fmt"
	"io"
	"regexp"

	"github.com/sirupsen/logrus"
)

// FilterHook suppresses every log message not matching the provided regular
// expression.
type FilterHook struct {
	filter *regexp.Regexp
}

// NewFilterHook creates a new FilterHook for the provided expression. An
// empty filter matches everything.
func NewFilterHook(filter string) (*FilterHook, error) {
	if filter == "" {
		return &FilterHook{}, nil
	}

	compiled, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("log filter does not compile: %w", err)
	}
	logrus.Debugf("Using log filter: %q", compiled)

	return &FilterHook{filter: compiled}, nil
}

// Levels returns the levels for which the hook is activated.
func (f *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire executes the hook for every logrus entry.
func (f *FilterHook) Fire(entry *logrus.Entry) error {
	if f.filter != nil && !f.filter.MatchString(entry.Message) {
		*entry = logrus.Entry{
			Logger: &logrus.Logger{
				Out:       io.Discard,
				Formatter: &logrus.JSONFormatter{},
			},
		}
	}

	return nil
}
