package pbkore

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

type TracerCommon interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartStep(t *Trace, step string)
	DoneStep(t *Trace, step string, dt time.Duration)
}

// Tracer receives everything pbtool does. Messages passed to Debug, Info and
// Warn are templates with `name` placeholders that refer to the key/value
// pairs in args.
type Tracer interface {
	TracerCommon

	RunTool(t *Trace, cmd string)
	Compile(t *Trace, src, out string)
	UpToDate(t *Trace, src, out string)
	Copy(t *Trace, src, dst string)
	CopyFailed(t *Trace, item string, err error)
	Remove(t *Trace, path string)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn | TraceInfo

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace is the position within the steps of a pbtool run. Sub steps are
// started with [Trace.Step] and must be closed with [Trace.Done].
type Trace struct {
	root  *traceRoot
	up    *Trace
	step  string
	id    uint64
	start time.Time
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	if ctx == nil {
		ctx = context.Background()
	}
	root := &traceRoot{ctx: ctx, tr: t}
	return &Trace{root: root}
}

func (t *Trace) Ctx() context.Context { return t.root.ctx }

func (t *Trace) Debug(msg string, args ...any) { t.root.tr.Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.root.tr.Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.root.tr.Warn(t, msg, args...) }

func (t *Trace) Step(name string) *Trace {
	sub := &Trace{
		root:  t.root,
		up:    t,
		step:  name,
		id:    t.root.idSeq.Add(1),
		start: time.Now(),
	}
	t.root.tr.StartStep(sub, name)
	return sub
}

func (t *Trace) Done() {
	if t.up == nil {
		return
	}
	t.root.tr.DoneStep(t, t.step, time.Since(t.start))
}

func (t *Trace) RunTool(cmd string)                { t.root.tr.RunTool(t, cmd) }
func (t *Trace) Compile(src, out string)           { t.root.tr.Compile(t, src, out) }
func (t *Trace) UpToDate(src, out string)          { t.root.tr.UpToDate(t, src, out) }
func (t *Trace) Copy(src, dst string)              { t.root.tr.Copy(t, src, dst) }
func (t *Trace) CopyFailed(item string, err error) { t.root.tr.CopyFailed(t, item, err) }
func (t *Trace) Remove(path string)                { t.root.tr.Remove(t, path) }

func (t *Trace) TopID() uint64 { return t.id }

func (t *Trace) TopTag() string {
	if t.up == nil {
		return ""
	}
	return fmt.Sprintf("{%d}", t.id)
}

// Path returns the names of all steps from the outermost to t.
func (t *Trace) Path() string {
	var steps []string
	for ; t != nil && t.up != nil; t = t.up {
		steps = append(steps, t.step)
	}
	var sb strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		sb.WriteString(steps[i])
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (t *Trace) String() string {
	return fmt.Sprintf("%s<%s>", t.TopTag(), t.Path())
}

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	idSeq atomic.Uint64
}
