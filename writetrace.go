package pbtool

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/pbtool/pbkore"
	"git.fractalqb.de/fractalqb/sllm/v3"
	"github.com/fatih/color"
)

// WriteTracer writes human readable trace lines to W. Which lines are
// written is selected by Log.
type WriteTracer struct {
	W   io.Writer
	Log pbkore.TraceLog
}

var _ pbkore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() pbkore.Tracer {
	return &WriteTracer{W: os.Stderr, Log: pbkore.DefaultTraceLog}
}

var (
	warnMark  = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorMark = color.New(color.FgRed, color.Bold).SprintFunc()
	doneMark  = color.New(color.FgGreen).SprintFunc()
	stepMark  = color.New(color.FgCyan).SprintFunc()
)

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = pbkore.TraceWarn
	case "info", "i":
		tr.Log = pbkore.TraceWarn | pbkore.TraceInfo
	case "debug", "d":
		tr.Log = pbkore.TraceWarn | pbkore.TraceInfo | pbkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr WriteTracer) logWarn() bool {
	return tr.Log&(pbkore.TraceWarn|pbkore.TraceInfo|pbkore.TraceDebug) != 0
}

func (tr WriteTracer) logInfo() bool {
	return tr.Log&(pbkore.TraceInfo|pbkore.TraceDebug) != 0
}

func (tr WriteTracer) logDebug() bool { return tr.Log&pbkore.TraceDebug != 0 }

func (tr WriteTracer) Debug(t *pbkore.Trace, msg string, args ...any) {
	if !tr.logDebug() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  DEBUG ", t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Info(t *pbkore.Trace, msg string, args ...any) {
	if !tr.logInfo() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  ", t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Warn(t *pbkore.Trace, msg string, args ...any) {
	if !tr.logWarn() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t%s ", t.TopTag(), warnMark("WARN"))
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) StartStep(t *pbkore.Trace, step string) {
	if tr.logInfo() {
		fmt.Fprintf(tr.W, "%s\t%s %s\n", t.TopTag(), stepMark("{"), step)
	}
}

func (tr WriteTracer) DoneStep(t *pbkore.Trace, step string, dt time.Duration) {
	if tr.logInfo() {
		fmt.Fprintf(tr.W, "%s\t%s %s took %s\n", t.TopTag(), stepMark("}"), step, dt)
	}
}

func (tr WriteTracer) RunTool(t *pbkore.Trace, cmd string) {
	if tr.logDebug() {
		fmt.Fprintf(tr.W, "%s\t$ %s\n", t.TopTag(), cmd)
	}
}

func (tr WriteTracer) Compile(t *pbkore.Trace, src, out string) {
	if tr.logInfo() {
		fmt.Fprintf(tr.W, "%s\t%s compiling %s to %s\n", t.TopTag(), doneMark("!"), src, out)
	}
}

func (tr WriteTracer) UpToDate(t *pbkore.Trace, src, out string) {
	if tr.logInfo() {
		fmt.Fprintf(tr.W, "%s\t. skipping %s (unchanged)\n", t.TopTag(), src)
	}
}

func (tr WriteTracer) Copy(t *pbkore.Trace, src, dst string) {
	switch {
	case tr.logDebug():
		fmt.Fprintf(tr.W, "%s\t  copying %s to %s\n", t.TopTag(), src, dst)
	case tr.logInfo():
		fmt.Fprintf(tr.W, "%s\t  copying %s\n", t.TopTag(), src)
	}
}

func (tr WriteTracer) CopyFailed(t *pbkore.Trace, item string, err error) {
	if tr.logWarn() {
		fmt.Fprintf(tr.W, "%s\t%s copying %s: %s\n", t.TopTag(), errorMark("ERROR"), item, err)
	}
}

func (tr WriteTracer) Remove(t *pbkore.Trace, path string) {
	if tr.logInfo() {
		fmt.Fprintf(tr.W, "%s\t%s deleted %s\n", t.TopTag(), doneMark("!"), path)
	}
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
