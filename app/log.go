package app

import (
	"fmt"

	"flipview/hal"

	"github.com/google/uuid"
)

// sessionLog prefixes every line with the program name and a short session id.
type sessionLog struct {
	l      hal.Logger
	prefix string
}

func newSessionLog(l hal.Logger, id uuid.UUID) *sessionLog {
	return &sessionLog{l: l, prefix: "flipview: [" + id.String()[:8] + "] "}
}

func (s *sessionLog) printf(format string, args ...any) {
	if s == nil || s.l == nil {
		return
	}
	s.l.WriteLineString(s.prefix + fmt.Sprintf(format, args...))
}
