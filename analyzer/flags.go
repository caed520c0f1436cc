// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"flag"

	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	checker := func(value config.CheckerFlags) flag.Getter {
		return NewCheckerValue(&r.Checkers, value)
	}

	behavior := func(value config.Config) flag.Getter {
		return NewBehaviorValue(&r.Behavior, value)
	}

	flags.Var(checker(config.BlockingChecker), "blocking", "check for known blocking calls on future values")
	flags.Var(checker(config.AlternativeChecker), "alternative", "suggest Async-suffixed siblings of synchronous calls")
	flags.Var(checker(config.ByteCountChecker), "bytecount", "check count arguments of bulk-copy calls")
	flags.Var(behavior(config.IncludeGenerated), "generated", "check generated files")

	flags.Var(refListValue{refs: &r.Futures}, "future",
		"comma-separated future types (e.g., pkg/path.Type), replacing the built-in set")
	flags.Var(refListValue{refs: &r.BlockCopy}, "blockcopy",
		"comma-separated bulk-copy functions for the byte-count check (e.g., pkg/path.Func)")
}
