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

package analyzer

import (
	"log/slog"
	"strings"

	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/funcref"
	"fillmore-labs.com/asyncguard/internal/run"
)

// Option configures specific behavior of a [New] asyncguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithBlocking is an [Option] to configure whether blocking-call checks are enabled.
func WithBlocking(blocking bool) Option { return blockingOption{blocking: blocking} }

type blockingOption struct{ blocking bool }

func (o blockingOption) apply(r *run.Options) {
	r.Checkers.Set(config.BlockingChecker, o.blocking)
}

func (o blockingOption) LogAttr() slog.Attr {
	return slog.Bool("blocking", o.blocking)
}

// WithAlternative is an [Option] to configure whether Async-suffixed siblings are suggested.
func WithAlternative(alternative bool) Option { return alternativeOption{alternative: alternative} }

type alternativeOption struct{ alternative bool }

func (o alternativeOption) apply(r *run.Options) {
	r.Checkers.Set(config.AlternativeChecker, o.alternative)
}

func (o alternativeOption) LogAttr() slog.Attr {
	return slog.Bool("alternative", o.alternative)
}

// WithByteCount is an [Option] to configure whether the byte-count check is enabled.
func WithByteCount(byteCount bool) Option { return byteCountOption{byteCount: byteCount} }

type byteCountOption struct{ byteCount bool }

func (o byteCountOption) apply(r *run.Options) {
	r.Checkers.Set(config.ByteCountChecker, o.byteCount)
}

func (o byteCountOption) LogAttr() slog.Attr {
	return slog.Bool("bytecount", o.byteCount)
}

// WithFutures is an [Option] replacing the well-known future types with
// "pkg/path.Type" references. Malformed references are dropped; a
// reference that never resolves simply disables the checks for packages
// not importing it.
func WithFutures(futures ...string) Option { return futuresOption{futures: futures} }

type futuresOption struct{ futures []string }

func (o futuresOption) apply(r *run.Options) {
	r.Futures = parseRefs(o.futures)
}

func (o futuresOption) LogAttr() slog.Attr {
	return slog.String("future", strings.Join(o.futures, ","))
}

// WithBlockCopy is an [Option] naming bulk-copy functions for the
// byte-count check as "pkg/path.Func" references.
func WithBlockCopy(blockCopy ...string) Option { return blockCopyOption{blockCopy: blockCopy} }

type blockCopyOption struct{ blockCopy []string }

func (o blockCopyOption) apply(r *run.Options) {
	r.BlockCopy = parseRefs(o.blockCopy)
}

func (o blockCopyOption) LogAttr() slog.Attr {
	return slog.String("blockcopy", strings.Join(o.blockCopy, ","))
}

// parseRefs parses references, dropping malformed elements. The result
// is non-nil even when empty, so an all-invalid list still replaces the
// built-in table instead of silently reinstating it.
func parseRefs(refs []string) []funcref.Ref {
	parsed := make([]funcref.Ref, 0, len(refs))

	for _, s := range refs {
		ref, err := funcref.Parse(s)
		if err != nil {
			continue
		}

		parsed = append(parsed, ref)
	}

	return parsed
}
