package pbtool

import (
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// TestTracer logs all trace events to a test.
type TestTracer struct{ t testing.TB }

func NewTestTracer(t testing.TB) TestTracer { return TestTracer{t} }

var _ pbkore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"pbtool-DEBUG:", t.Path(), msg}, args...)...)
}

func (tr TestTracer) Info(t *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"pbtool-INFO:", t.Path(), msg}, args...)...)
}

func (tr TestTracer) Warn(t *pbkore.Trace, msg string, args ...any) {
	tr.t.Log(append([]any{"pbtool-WARN:", t.Path(), msg}, args...)...)
}

func (tr TestTracer) StartStep(t *pbkore.Trace, step string) {
	tr.t.Logf("pbtool-StartStep: %s", t)
}

func (tr TestTracer) DoneStep(t *pbkore.Trace, step string, dt time.Duration) {
	tr.t.Logf("pbtool-DoneStep: %s %s", t, dt)
}

func (tr TestTracer) RunTool(t *pbkore.Trace, cmd string) {
	tr.t.Logf("pbtool-RunTool: %s", cmd)
}

func (tr TestTracer) Compile(t *pbkore.Trace, src, out string) {
	tr.t.Logf("pbtool-Compile: %s -> %s", src, out)
}

func (tr TestTracer) UpToDate(t *pbkore.Trace, src, out string) {
	tr.t.Logf("pbtool-UpToDate: %s -> %s", src, out)
}

func (tr TestTracer) Copy(t *pbkore.Trace, src, dst string) {
	tr.t.Logf("pbtool-Copy: %s -> %s", src, dst)
}

func (tr TestTracer) CopyFailed(t *pbkore.Trace, item string, err error) {
	tr.t.Logf("pbtool-CopyFailed: %s: %s", item, err)
}

func (tr TestTracer) Remove(t *pbkore.Trace, path string) {
	tr.t.Logf("pbtool-Remove: %s", path)
}
