// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	stepIndent   = 4  // spaces to indent step entries
	opWidth      = 18 // Width for the op name
	targetWidth  = 35 // Width for the step target
	statusWidth  = 10 // Width for status text
	statusFailed = "FAILED"
)

// 🎯 StepOperation is one applied plan step, for logging
type StepOperation struct {
	Index   int    // Position in the plan
	Op      string // Op name
	Target  string // What the step acts on
	Changed bool   // Whether the document text changed
	Err     error  // Set when the step failed
}

// Status returns the display status of the step.
func (s StepOperation) Status() string {
	switch {
	case s.Err != nil:
		return statusFailed
	case s.Changed:
		return "CHANGED"
	default:
		return "UNCHANGED"
	}
}

// 📦 PlanOperation describes a plan run, for logging
type PlanOperation struct {
	Name   string // Plan name, usually its file
	Steps  int    // Number of steps
	Output string // Output location, empty when nothing is written
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *PlanOperation
	steps     []StepOperation
}

// 🏭 New creates a new logger. Structured records go to stderr.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger that writes structured records to zlog.
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context, along with its zerolog logger so
// zerolog.Ctx finds it too
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatStep formats a step for display
func (l *Logger) formatStep(step StepOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case step.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
	case step.Changed:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	statusColor := color.FgGreen
	if step.Err != nil {
		statusColor = color.FgRed
	} else if !step.Changed {
		statusColor = color.Faint
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", stepIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.FgMagenta).Sprint(fmt.Sprintf("%-*s", opWidth, step.Op)),
		fmt.Sprintf("%-*s", targetWidth, step.Target),
		color.New(statusColor).Sprint(fmt.Sprintf("%-*s", statusWidth, step.Status())))
}

// 📝 LogStep logs an applied step
func (l *Logger) LogStep(ctx context.Context, step StepOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.steps = append(l.steps, step)

	fmt.Fprintln(l.console, l.formatStep(step))

	ev := l.zlog.Info()
	if step.Err != nil {
		ev = l.zlog.Error().Err(step.Err)
	}
	ev.Int("index", step.Index).
		Str("op", step.Op).
		Str("target", step.Target).
		Bool("changed", step.Changed).
		Msg("plan step")
}

// 📝 StartPlan starts a new plan run
func (l *Logger) StartPlan(ctx context.Context, op PlanOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.steps = nil

	fmt.Fprintf(l.console, "[transforming %s]\n",
		color.New(color.FgCyan).Sprint(op.Name))

	output := op.Output
	if output == "" {
		output = "(no output)"
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("%d steps", op.Steps),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(output))

	l.zlog.Info().
		Str("plan", op.Name).
		Int("steps", op.Steps).
		Str("output", op.Output).
		Msg("starting plan")
}

// 📝 EndPlan ends the current plan run
func (l *Logger) EndPlan(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	changed := 0
	for _, s := range l.steps {
		if s.Changed {
			changed++
		}
	}

	l.zlog.Info().
		Str("plan", l.currentOp.Name).
		Int("applied", len(l.steps)).
		Int("changed", changed).
		Msg("plan complete")

	l.currentOp = nil
	l.steps = nil
}

// Steps returns the steps logged since the current plan started.
func (l *Logger) Steps() []StepOperation {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]StepOperation, len(l.steps))
	copy(out, l.steps)
	return out
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("xmlentity")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
