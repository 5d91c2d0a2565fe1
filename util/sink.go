package util

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Sink receives the lines a demonstration prints.
type Sink interface {
	WriteLine(line string)
}

// Printf formats and writes one line.
func Printf(s Sink, format string, args ...interface{}) {
	s.WriteLine(fmt.Sprintf(format, args...))
}

type console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole writes each line to w followed by a newline.
func NewConsole(w io.Writer) Sink {
	return &console{w: w}
}

func (c *console) WriteLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}

type zapSink struct {
	log *zap.Logger
}

// NewZapSink records every line as an info entry on log.
func NewZapSink(log *zap.Logger) Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &zapSink{log: log.WithOptions(zap.AddCallerSkip(1))}
}

func (z *zapSink) WriteLine(line string) {
	z.log.Info(line, zap.String("sink", "demo"))
}

type tee []Sink

// Tee duplicates every line to all sinks, in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) WriteLine(line string) {
	for _, s := range t {
		s.WriteLine(line)
	}
}

// Discard drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) WriteLine(string) {}

// Recorder keeps lines in memory, mostly for tests.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) WriteLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func (r *Recorder) String() string {
	return strings.Join(r.Lines(), "\n")
}
