// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Package funcref parses references to package-level types and functions
// from configuration values.
package funcref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRef is returned for malformed references.
var ErrInvalidRef = errors.New("invalid reference")

// Ref names a package-level type or function.
// Format: "pkg/path.Name".
type Ref struct {
	Path string
	Name string
}

// Parse parses a single "pkg/path.Name" reference.
func Parse(s string) (Ref, error) {
	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Ref{}, fmt.Errorf("%w: %q, want \"pkg/path.Name\"", ErrInvalidRef, s)
	}

	return Ref{Path: s[:lastDot], Name: s[lastDot+1:]}, nil
}

// ParseList parses a comma-separated list of references. Empty elements
// are ignored, so a trailing comma is harmless.
func ParseList(s string) ([]Ref, error) {
	var refs []Ref

	for elem := range strings.SplitSeq(s, ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}

		ref, err := Parse(elem)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

// String formats the reference back into its "pkg/path.Name" form.
func (r Ref) String() string {
	return r.Path + "." + r.Name
}

// Format formats a list of references into a comma-separated flag value.
func Format(refs []Ref) string {
	elems := make([]string, len(refs))
	for i, ref := range refs {
		elems[i] = ref.String()
	}

	return strings.Join(elems, ",")
}
