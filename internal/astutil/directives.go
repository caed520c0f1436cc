// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package astutil

import (
	"go/ast"
	"strings"
)

// AwaitableDirective marks a type as usable as the result of an
// asynchronous function: `//asyncguard:awaitable`.
const AwaitableDirective = "//" + asyncguard + ":awaitable"

// HasDeprecated reports whether a doc comment contains a "Deprecated:"
// paragraph following the standard Go convention.
func HasDeprecated(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, comment := range doc.List {
		text := strings.TrimPrefix(comment.Text, "//")
		text = strings.TrimPrefix(text, " ")

		if strings.HasPrefix(text, "Deprecated:") {
			return true
		}
	}

	return false
}

// HasAwaitableDirective reports whether a doc comment carries the
// awaitable marker directive.
func HasAwaitableDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, comment := range doc.List {
		if comment.Text == AwaitableDirective || strings.HasPrefix(comment.Text, AwaitableDirective+" ") {
			return true
		}
	}

	return false
}
