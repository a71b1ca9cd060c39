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

package tree

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNotFound is returned when a local operation cannot find its named target.
	ErrNotFound = errors.Base("not found")

	// ErrInvalidInput is returned for names that fail validation and for
	// structurally invalid requests.
	ErrInvalidInput = errors.Base("invalid input")
)

// namePattern is only enforced when an Element is constructed.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// 🔍 ValidName reports whether name is an acceptable element name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

func validateName(name string) error {
	if !ValidName(name) {
		return errors.Errorf("%w: element name %q must start with a letter and contain 1-64 letters, digits, underscores or hyphens", ErrInvalidInput, name)
	}
	return nil
}
