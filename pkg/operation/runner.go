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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/xmlentity/pkg/config"
	"github.com/walteh/xmlentity/pkg/log"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 📊 StepResult is the outcome of one applied operation.
type StepResult struct {
	Operation Operation
	Changed   bool
}

// 🏃 Runner applies operations to a document
type Runner struct {
	logger *log.Logger
}

// 🏗️ NewRunner creates a new runner. A nil logger disables console reporting.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run applies ops to doc in order and stops at the first failure. The
// results of the steps applied before a failure are returned with the error.
func (r *Runner) Run(ctx context.Context, name string, doc *tree.Document, ops []Operation) ([]StepResult, error) {
	return r.run(ctx, log.PlanOperation{Name: name, Steps: len(ops)}, doc, ops)
}

func (r *Runner) run(ctx context.Context, plan log.PlanOperation, doc *tree.Document, ops []Operation) ([]StepResult, error) {
	if doc == nil {
		return nil, errors.Errorf("%w: nil document", tree.ErrInvalidInput)
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("plan", plan.Name).Int("steps", plan.Steps).Str("output", plan.Output).Msg("running operations")

	if r.logger != nil {
		r.logger.StartPlan(ctx, plan)
		defer r.logger.EndPlan(ctx)
	}

	results := make([]StepResult, 0, len(ops))
	before := doc.ToText()

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, errors.Errorf("operation cancelled: %w", err)
		}

		err := op.Apply(doc)

		after := before
		if err == nil {
			after = doc.ToText()
		}
		changed := after != before
		before = after

		r.report(ctx, log.StepOperation{
			Index:   i,
			Op:      op.Name(),
			Target:  op.Target(),
			Changed: changed,
			Err:     err,
		})

		if err != nil {
			return results, errors.Errorf("step %d (%s %s): %w", i, op.Name(), op.Target(), err)
		}
		results = append(results, StepResult{Operation: op, Changed: changed})
	}

	return results, nil
}

func (r *Runner) report(ctx context.Context, step log.StepOperation) {
	zerolog.Ctx(ctx).Debug().
		Int("index", step.Index).
		Str("op", step.Op).
		Str("target", step.Target).
		Str("status", step.Status()).
		Msg("applied operation")

	if r.logger != nil {
		r.logger.LogStep(ctx, step)
	}
}

// 🚀 Execute applies a whole plan to doc: header overrides, then every
// transform, then the write to the plan output when both an output and a sink
// are given. The rendered document is returned.
func (r *Runner) Execute(ctx context.Context, doc *tree.Document, plan *config.Config, s tree.TextSink) (string, error) {
	ops, err := FromConfig(plan)
	if err != nil {
		return "", errors.Errorf("building operations: %w", err)
	}
	if doc == nil {
		return "", errors.Errorf("%w: nil document", tree.ErrInvalidInput)
	}

	if plan.Version != "" {
		doc.SetVersion(plan.Version)
	}
	if plan.Encoding != "" {
		doc.SetEncoding(plan.Encoding)
	}

	name := plan.Output
	if name == "" {
		name = "document"
	}

	if _, err := r.run(ctx, log.PlanOperation{Name: name, Steps: len(ops), Output: plan.Output}, doc, ops); err != nil {
		return "", err
	}

	if plan.Output == "" {
		return doc.ToText(), nil
	}

	text, err := doc.Export(ctx, s, plan.Output)
	if err != nil {
		return "", errors.Errorf("exporting: %w", err)
	}

	if r.logger != nil && s != nil {
		r.logger.Successf("wrote %s", plan.Output)
	}
	return text, nil
}
