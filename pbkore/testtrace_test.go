package pbkore

import (
	"testing"
	"time"
)

type testTracer struct{ t *testing.T }

var _ Tracer = testTracer{}

func (tr testTracer) Debug(t *Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"DEBUG", t.Path(), msg}, args...)...)
}

func (tr testTracer) Info(t *Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"INFO", t.Path(), msg}, args...)...)
}

func (tr testTracer) Warn(t *Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"WARN", t.Path(), msg}, args...)...)
}

func (tr testTracer) StartStep(t *Trace, step string) { tr.t.Logf("StartStep: %s", t) }

func (tr testTracer) DoneStep(t *Trace, step string, dt time.Duration) {
	tr.t.Logf("DoneStep: %s %s", t, dt)
}

func (tr testTracer) RunTool(t *Trace, cmd string)       { tr.t.Logf("RunTool: %s", cmd) }
func (tr testTracer) Compile(t *Trace, src, out string)  { tr.t.Logf("Compile: %s -> %s", src, out) }
func (tr testTracer) UpToDate(t *Trace, src, out string) { tr.t.Logf("UpToDate: %s", src) }
func (tr testTracer) Copy(t *Trace, src, dst string)     { tr.t.Logf("Copy: %s -> %s", src, dst) }
func (tr testTracer) Remove(t *Trace, path string)       { tr.t.Logf("Remove: %s", path) }

func (tr testTracer) CopyFailed(t *Trace, item string, err error) {
	tr.t.Logf("CopyFailed: %s: %s", item, err)
}
