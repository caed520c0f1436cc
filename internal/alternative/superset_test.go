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

package alternative

import (
	"go/token"
	"go/types"
	"testing"
)

func sig(params ...types.Type) *types.Signature {
	vars := make([]*types.Var, len(params))
	for i, p := range params {
		vars[i] = types.NewVar(token.NoPos, nil, "", p)
	}

	return types.NewSignatureType(nil, nil, nil, types.NewTuple(vars...), nil, false)
}

func fn(params ...types.Type) *types.Func {
	return types.NewFunc(token.NoPos, nil, "F"+Suffix, sig(params...))
}

func TestParamSuperset(t *testing.T) {
	t.Parallel()

	intT := types.Typ[types.Int]
	strT := types.Typ[types.String]
	boolT := types.Typ[types.Bool]

	tests := []struct {
		name string
		cand candidate
		orig *types.Signature
		want bool
	}{
		{
			name: "Identical",
			cand: candidate{fn: fn(intT, strT)},
			orig: sig(intT, strT),
			want: true,
		},
		{
			name: "ExtraLeading",
			cand: candidate{fn: fn(boolT, intT, strT)},
			orig: sig(intT, strT),
			want: true,
		},
		{
			name: "ExtraInterleaved",
			cand: candidate{fn: fn(intT, boolT, strT)},
			orig: sig(intT, strT),
			want: true,
		},
		{
			name: "Missing",
			cand: candidate{fn: fn(intT)},
			orig: sig(strT),
			want: false,
		},
		{
			name: "OrderMatters",
			cand: candidate{fn: fn(strT, intT)},
			orig: sig(intT, strT),
			want: false,
		},
		{
			name: "EmptyOriginal",
			cand: candidate{fn: fn()},
			orig: sig(),
			want: true,
		},
		{
			name: "ExtensionSkipsReceiver",
			cand: candidate{fn: fn(strT, intT), extension: true},
			orig: sig(intT),
			want: true,
		},
		{
			name: "ExtensionReceiverNotReused",
			cand: candidate{fn: fn(strT), extension: true},
			orig: sig(strT),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := paramSuperset(tt.cand, tt.orig); got != tt.want {
				t.Errorf("paramSuperset() = %v, want %v", got, tt.want)
			}
		})
	}
}
