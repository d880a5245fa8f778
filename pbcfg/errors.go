package pbcfg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingConfigFile = errors.New("configuration file is missing")
	ErrMissingKey        = errors.New("missing configuration key")
)

type MissingSection struct {
	Section, Option string
}

func (e *MissingSection) Error() string {
	return fmt.Sprintf("missing section '%s' when looking for option '%s'",
		e.Section,
		e.Option,
	)
}

func (e *MissingSection) Is(target error) bool { return target == ErrMissingKey }

type MissingOption struct {
	Section, Option string
}

func (e *MissingOption) Error() string {
	return fmt.Sprintf("no option '%s' in section: '%s'", e.Option, e.Section)
}

func (e *MissingOption) Is(target error) bool { return target == ErrMissingKey }

// MalformedValue is reported for a value that is present but cannot be used.
type MalformedValue struct {
	Key    Key
	Value  string
	Reason string
}

func (e *MalformedValue) Error() string {
	return fmt.Sprintf("malformed value '%s' for %s: %s", e.Value, e.Key, e.Reason)
}

// Problems collects all issues found in a configuration. A nil or empty
// Problems is OK.
type Problems []error

func (ps Problems) OK() bool { return len(ps) == 0 }

func (ps Problems) Error() string {
	switch len(ps) {
	case 0:
		return "no configuration problems"
	case 1:
		return ps[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d configuration problems:", len(ps))
	for _, p := range ps {
		sb.WriteString("\n- ")
		sb.WriteString(p.Error())
	}
	return sb.String()
}

func (ps Problems) Unwrap() []error { return ps }

// Err returns ps as error or nil if ps is OK.
func (ps Problems) Err() error {
	if ps.OK() {
		return nil
	}
	return ps
}
