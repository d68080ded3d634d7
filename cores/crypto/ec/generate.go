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
//
// Author: randyma
// Date: 2022-06-27 09:48:31
// LastEditors: randyma
// LastEditTime: 2022-06-28 10:07:46
// FilePath: \ecx\cores\crypto\ec\generate.go
// Description: 随机曲线与基点搜索

package ec

import (
	"context"
	"errors"
	"math/rand"

	"github.com/doublemo/ecx/cores/crypto/field"
)

// ErrNoPoint 搜索次数用尽仍未找到曲线点
var ErrNoPoint = errors.New("no curve point found within the attempt bound")

// GenerateCurve 随机曲线, 重采样系数直到判别式非零.
// 奇异的 (a, b) 组合在 p² 个组合中至多 p 个, 循环期望极短.
func GenerateCurve(r *rand.Rand, f *field.Field) Curve[field.Fp] {
	for {
		c, err := New(f.Random(r), f.Random(r))
		if err == nil {
			return c
		}
	}
}

// Complexify 把基域曲线提升到二次扩域: 同一方程, 点群取自 F_p².
// 系数本就非奇异, 嵌入后判别式不变.
func Complexify(c Curve[field.Fp]) Curve[field.Fp2] {
	zero := c.a.Field().Zero()
	return Curve[field.Fp2]{
		a: field.Fp2{Re: c.a, Im: zero},
		b: field.Fp2{Re: c.b, Im: zero},
	}
}

// LiftX 由横坐标提升曲线点: y = sqrt(x³ + ax + b).
// 右端为二次非剩余时返回 false, 调用方换一个 x 重试.
func LiftX(c Curve[field.Fp], x field.Fp) (Point[field.Fp], bool) {
	y, ok := c.rhs(x).Sqrt()
	if !ok {
		return Point[field.Fp]{}, false
	}
	return NewPoint(x, y), true
}

// FindGenerator 随机基点搜索: 随机取 x 并开方提升.
// 约一半的 x 可提升, 期望两次命中.
func FindGenerator(r *rand.Rand, f *field.Field, c Curve[field.Fp], maxAttempts uint64) (Point[field.Fp], error) {
	for i := uint64(0); i < maxAttempts; i++ {
		if p, ok := LiftX(c, f.Random(r)); ok {
			return p, nil
		}
	}
	return Point[field.Fp]{}, ErrNoPoint
}

// FindGeneratorExt 扩域基点搜索.
// 扩域上没有闭式开方, 只能盲试坐标对, 命中概率约 1/p²,
// 搜索量大, 支持 ctx 取消.
func FindGeneratorExt(ctx context.Context, r *rand.Rand, f *field.Field, c Curve[field.Fp2], maxAttempts uint64) (Point[field.Fp2], error) {
	for i := uint64(0); i < maxAttempts; i++ {
		if i&0xfff == 0 {
			select {
			case <-ctx.Done():
				return Point[field.Fp2]{}, ctx.Err()
			default:
			}
		}

		x := field.Fp2{Re: f.Random(r), Im: f.Random(r)}
		y := field.Fp2{Re: f.Random(r), Im: f.Random(r)}
		p := NewPoint(x, y)
		if c.IsOnCurve(p) {
			return p, nil
		}
	}
	return Point[field.Fp2]{}, ErrNoPoint
}
