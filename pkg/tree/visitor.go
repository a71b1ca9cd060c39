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

// 🚶 Visitor is implemented by every tree-wide operation.
//
// Implementations do their own recursion: a visit method decides whether and
// how to descend by calling Accept on the nodes it wants visited next.
type Visitor interface {
	VisitDocument(*Document)
	VisitElement(*Element)
	VisitAttribute(*Attribute)
}

// BaseVisitor provides no-op visit methods. Embed it and override only the
// cases an operation needs.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*Document)   {}
func (BaseVisitor) VisitElement(*Element)     {}
func (BaseVisitor) VisitAttribute(*Attribute) {}

var (
	_ Visitor = (*renderer)(nil)
	_ Visitor = (*entityRenamer)(nil)
	_ Visitor = (*attributeRenamer)(nil)
	_ Visitor = (*entityRemover)(nil)
	_ Visitor = (*attributeRemover)(nil)
	_ Visitor = (*pathQuery)(nil)
	_ Visitor = (*globQuery)(nil)
)
