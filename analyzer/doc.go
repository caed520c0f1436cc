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

// Package analyzer implements the asyncguard static analysis pass.
//
// # Overview
//
// AsyncGuard flags synchronous anti-patterns in code built on future
// libraries:
//
//   - Calls to known blocking operations, such as Wait, Result or Get on
//     a future value, made inside a function whose own result is a
//     future. Blocking a function that hands back a future defeats the
//     purpose of going asynchronous in the first place.
//   - Synchronous calls with an Async-suffixed sibling. When Foo is
//     called inside an asynchronous function and an accessible,
//     non-deprecated FooAsync with covering parameters and a future
//     result exists, the sibling is suggested through the diagnostic's
//     finding record.
//   - Element counts passed as byte counts. A bulk-copy call such as
//     BlockCopy(src, 0, dst, 0, len(src)) copies len(src) bytes, not
//     len(src) elements; when src's element type is wider than one byte
//     the count is virtually always a unit-mismatch bug.
//
// # Asynchronous functions
//
// A function counts as asynchronous when its declared result (tolerating
// a trailing error) is a future type from a configured library, a
// sequence of futures, a type implementing the library's Stream
// capability, or a type whose declaration carries the
// `//asyncguard:awaitable` directive. Closures invoked directly by defer
// or go statements discard their result and never count.
//
// # Configuration
//
// The blocking-call catalog is compiled from well-known future
// libraries. The -future flag replaces the set with custom
// "pkg/path.Type" references, and -blockcopy names byte-oriented copy
// functions for the count check. Packages that import none of the
// configured libraries are skipped without diagnostics.
package analyzer
