// Copyright (c) 2022 The Ecx Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ec

import (
	"context"
	"errors"

	"github.com/doublemo/ecx/cores/crypto/field"
)

// ErrOrderNotFound 在给定步数内未回到无穷远点
var ErrOrderNotFound = errors.New("point order not found within bound")

// Order 点的阶: 自 g 逐次累加, 数到第一次回到无穷远点.
// 纯暴力搜索, 步数由 bound 限制, 长搜索可通过 ctx 取消.
func Order[E field.Element[E]](ctx context.Context, c Curve[E], g Point[E], bound uint64) (uint64, error) {
	if g.IsInfinity() {
		return 1, nil
	}

	acc := g
	for n := uint64(2); n <= bound; n++ {
		if n&0xfff == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}

		acc = c.Add(acc, g)
		if acc.IsInfinity() {
			return n, nil
		}
	}
	return 0, ErrOrderNotFound
}
