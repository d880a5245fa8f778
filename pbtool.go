package pbtool

import (
	"context"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

const (
	Version     = "1.1"
	VersionDate = "2014-10-04"
)

// NewTrace starts a trace for one pbtool command. If t is nil, the
// [DefaultTracer] is used.
func NewTrace(ctx context.Context, t pbkore.Tracer) *pbkore.Trace {
	if t == nil {
		t = DefaultTracer()
	}
	return pbkore.NewTrace(ctx, t)
}
