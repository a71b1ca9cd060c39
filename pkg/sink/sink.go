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

package sink

import (
	"context"

	"github.com/walteh/xmlentity/pkg/tree"
)

// 📤 Sink receives rendered text for a location.
type Sink interface {
	WriteText(ctx context.Context, location, text string) error
}

var (
	_ Sink          = (*FileSink)(nil)
	_ Sink          = (*MemorySink)(nil)
	_ tree.TextSink = Sink(nil)
)
