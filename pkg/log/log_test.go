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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestLogger(t *testing.T, console io.Writer) *Logger {
	t.Helper()
	return NewWithZerolog(console, zerolog.New(zerolog.NewTestWriter(t)))
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_changed_step",
			op: func(t *testing.T, logger *Logger) {
				logger.LogStep(context.Background(), StepOperation{
					Index:   0,
					Op:      "rename_entity",
					Target:  "fuc -> unidade",
					Changed: true,
				})
			},
			wantLogs: []string{
				"⟳ rename_entity      fuc -> unidade                      CHANGED",
			},
		},
		{
			name: "log_plan",
			op: func(t *testing.T, logger *Logger) {
				logger.StartPlan(context.Background(), PlanOperation{
					Name:   "plan.yaml",
					Steps:  3,
					Output: "out/plano.xml",
				})
			},
			wantLogs: []string{
				"[transforming plan.yaml]",
				"◆ 3 steps • out/plano.xml",
			},
		},
		{
			name: "log_plan_without_output",
			op: func(t *testing.T, logger *Logger) {
				logger.StartPlan(context.Background(), PlanOperation{Name: "inline", Steps: 1})
			},
			wantLogs: []string{
				"[transforming inline]",
				"◆ 1 steps • (no output)",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying plan")
			},
			wantLogs: []string{
				"xmlentity • applying plan",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := newTestLogger(t, buf)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := newTestLogger(t, io.Discard)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")
	assert.NotEqual(t, zerolog.Disabled, zerolog.Ctx(ctx).GetLevel(), "zerolog logger should be in context too")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestStepFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		step StepOperation
		want string
	}{
		{
			name: "changed_step",
			step: StepOperation{Op: "remove_entity", Target: "curso", Changed: true},
			want: "    ⟳ remove_entity      curso                               CHANGED   ",
		},
		{
			name: "unchanged_step",
			step: StepOperation{Op: "remove_entity", Target: "missing"},
			want: "    • remove_entity      missing                             UNCHANGED ",
		},
		{
			name: "failed_step",
			step: StepOperation{Op: "add_attribute", Target: "x.y", Err: errors.New("not found")},
			want: "    ✗ add_attribute      x.y                                 FAILED    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newTestLogger(t, io.Discard)
			assert.Equal(t, tt.want, logger.formatStep(tt.step))
		})
	}
}

func TestPlanLifecycle(t *testing.T) {
	logger := newTestLogger(t, io.Discard)
	ctx := context.Background()

	logger.StartPlan(ctx, PlanOperation{Name: "p", Steps: 2})
	logger.LogStep(ctx, StepOperation{Index: 0, Op: "a", Changed: true})
	logger.LogStep(ctx, StepOperation{Index: 1, Op: "b"})

	steps := logger.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "CHANGED", steps[0].Status())
	assert.Equal(t, "UNCHANGED", steps[1].Status())

	logger.EndPlan(ctx)
	assert.Empty(t, logger.Steps())

	// ending twice is harmless
	logger.EndPlan(ctx)
}
