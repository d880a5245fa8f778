package mkfs

import (
	"context"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

type testTracer struct{ t *testing.T }

func newTestTrace(t *testing.T) *pbkore.Trace {
	return pbkore.NewTrace(context.Background(), testTracer{t})
}

func (tr testTracer) Debug(_ *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"DEBUG", msg}, args...)...)
}

func (tr testTracer) Info(_ *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"INFO", msg}, args...)...)
}

func (tr testTracer) Warn(_ *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"WARN", msg}, args...)...)
}

func (tr testTracer) StartStep(*pbkore.Trace, string)                 {}
func (tr testTracer) DoneStep(*pbkore.Trace, string, time.Duration)   {}
func (tr testTracer) RunTool(_ *pbkore.Trace, cmd string)             { tr.t.Log("run", cmd) }
func (tr testTracer) Compile(_ *pbkore.Trace, src, out string)        { tr.t.Log("compile", src) }
func (tr testTracer) UpToDate(_ *pbkore.Trace, src, out string)       { tr.t.Log("up-to-date", src) }
func (tr testTracer) Copy(_ *pbkore.Trace, src, dst string)           { tr.t.Log("copy", src, dst) }
func (tr testTracer) CopyFailed(_ *pbkore.Trace, i string, err error) { tr.t.Log("failed", i, err) }
func (tr testTracer) Remove(_ *pbkore.Trace, path string)             { tr.t.Log("remove", path) }
