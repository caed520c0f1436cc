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

package report

import "golang.org/x/tools/go/analysis"

// Blocking builds the record for a cataloged blocking call. The
// alternative is empty when the catalog entry names none; the extension
// path is the package path of an extension-style entry, empty for
// methods.
func Blocking(rng analysis.Range, target, alternative, extensionPath string) Finding {
	props := map[string]string{PropAlternative: alternative}
	if extensionPath != "" {
		props[PropExtensionNamespace] = extensionPath
	}

	f := Finding{
		Kind:     BlockingCall,
		Severity: SeverityWarning,
		Pos:      rng.Pos(),
		End:      rng.End(),
		Args:     []any{target},
		Props:    props,
	}

	if alternative != "" {
		f.Kind = BlockingAlternative
		f.Args = append(f.Args, alternative)
	}

	return f
}

// Suggestion builds the record for a discovered Async-suffixed sibling.
// The extension path is the package path of an extension-style candidate,
// empty otherwise.
func Suggestion(rng analysis.Range, target, alternative, extensionPath string) Finding {
	props := map[string]string{PropAlternative: alternative}
	if extensionPath != "" {
		props[PropExtensionNamespace] = extensionPath
	}

	return Finding{
		Kind:     SyncCall,
		Severity: SeveritySuggestion,
		Pos:      rng.Pos(),
		End:      rng.End(),
		Args:     []any{target, alternative},
		Props:    props,
	}
}

// ElementCount builds the record for a byte-count mismatch on a
// bulk-copy call.
func ElementCount(rng analysis.Range, array string) Finding {
	return Finding{
		Kind:     ByteCount,
		Severity: SeverityWarning,
		Pos:      rng.Pos(),
		End:      rng.End(),
		Args:     []any{"'" + array + "'"},
		Props:    map[string]string{PropAlternative: ""},
	}
}
