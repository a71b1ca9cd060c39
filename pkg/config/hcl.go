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
package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// HCL decodes .hcl plans. Each transform is a block labelled with its op.
var HCL = &Format{
	Name:       "HCL",
	Extensions: []string{".hcl"},
	Decode:     decodeHCL,
}

func init() {
	Register(HCL)
}

func decodeHCL(data []byte, cfg *Config) error {
	file, diags := hclparse.NewParser().ParseHCL(data, "plan.hcl")
	if diags.HasErrors() {
		return errors.Errorf("syntax: %w", diags)
	}

	// plans have no variables; an empty context still lets literals evaluate
	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if diags := gohcl.DecodeBody(file.Body, evalCtx, cfg); diags.HasErrors() {
		return errors.Errorf("decoding body: %w", diags)
	}
	return nil
}
