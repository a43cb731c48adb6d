// Copyright 2026 The svfmt Authors. All rights reserved.
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

package formatting

// Style is the set of user-tunable knobs consulted by the annotation and
// line-wrapping stages.
type Style struct {
	// IndentationSpaces is the indentation amount per nesting level.
	IndentationSpaces int
	// WrapSpaces is the additional indentation of wrapped continuation lines.
	WrapSpaces int
	// ColumnLimit is the target maximum line width.
	ColumnLimit int
	// OverColumnLimitPenalty is the cost per character beyond ColumnLimit,
	// dwarfing every break penalty so overflow is a last resort.
	OverColumnLimitPenalty int
	// CompactIndexingAndSelections removes spaces around binary operators
	// inside index and range expressions like a[b+1:0].
	CompactIndexingAndSelections bool
	// WrapEndElseClauses puts 'else' on its own line after 'end' instead of
	// appending it.
	WrapEndElseClauses bool
}

// DefaultStyle returns the canonical style.
func DefaultStyle() Style {
	return Style{
		IndentationSpaces:            2,
		WrapSpaces:                   4,
		ColumnLimit:                  100,
		OverColumnLimitPenalty:       10000,
		CompactIndexingAndSelections: true,
		WrapEndElseClauses:           false,
	}
}
