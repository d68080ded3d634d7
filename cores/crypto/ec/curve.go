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
// Date: 2022-06-24 10:05:44
// LastEditors: randyma
// LastEditTime: 2022-06-27 17:51:26
// FilePath: \ecx\cores\crypto\ec\curve.go
// Description: 短 Weierstrass 曲线群运算

// Package ec 实现短 Weierstrass 曲线 y² = x³ + ax + b 上的点群.
// 系数与坐标取自任一满足 field.Element 的域, 弦切法加法与倍加标量乘
// 对基域和二次扩域使用同一套公式.
package ec

import (
	"errors"

	"github.com/doublemo/ecx/cores/crypto/field"
)

// ErrSingular 奇异曲线, 判别式为零
var ErrSingular = errors.New("curve is singular")

// Curve 短 Weierstrass 曲线 y² = x³ + ax + b
type Curve[E field.Element[E]] struct {
	a, b E
}

// New 创建曲线, 拒绝判别式为零的奇异曲线
func New[E field.Element[E]](a, b E) (Curve[E], error) {
	c := Curve[E]{a: a, b: b}
	if c.Discriminant().IsZero() {
		return Curve[E]{}, ErrSingular
	}
	return c, nil
}

// A 一次项系数
func (c Curve[E]) A() E {
	return c.a
}

// B 常数项系数
func (c Curve[E]) B() E {
	return c.b
}

// Discriminant 判别式因子 4a³ + 27b², 为零时曲线有奇点
func (c Curve[E]) Discriminant() E {
	a3 := c.a.Square().Mul(c.a)
	b2 := c.b.Square()
	return mulSmall(a3, 4).Add(mulSmall(b2, 27))
}

// rhs 曲线方程右端 x³ + ax + b
func (c Curve[E]) rhs(x E) E {
	return x.Square().Mul(x).Add(c.a.Mul(x)).Add(c.b)
}

// IsOnCurve 点是否落在曲线上, 无穷远点视为在曲线上
func (c Curve[E]) IsOnCurve(p Point[E]) bool {
	if p.IsInfinity() {
		return true
	}
	return p.y.Square().Equal(c.rhs(p.x))
}

// Add 群加法, 弦切法.
// 输入要求在曲线上; 分母经情形分析不为零, 意外为零说明调用方
// 传入了非法点, 直接 panic.
func (c Curve[E]) Add(p, q Point[E]) Point[E] {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	var num, den E
	if p.x.Equal(q.x) {
		// 横坐标相同且纵坐标互为相反数: 连线垂直, 和为 O.
		// y = 0 的二阶点自加也落入此分支.
		if p.y.Equal(q.y.Neg()) {
			return Infinity[E]()
		}

		// 切线斜率 (3x² + a) / 2y
		num = mulSmall(p.x.Square(), 3).Add(c.a)
		den = p.y.Add(p.y)
	} else {
		// 弦斜率 (y₂ - y₁) / (x₂ - x₁)
		num = q.y.Sub(p.y)
		den = q.x.Sub(p.x)
	}

	inv, err := den.Invert()
	if err != nil {
		panic("ec: zero denominator in point addition")
	}

	lambda := num.Mul(inv)
	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return NewPoint(x3, y3)
}

// Double 二倍点
func (c Curve[E]) Double(p Point[E]) Point[E] {
	return c.Add(p, p)
}

// ScalarMult 标量乘 k·P, 自低位起逐位倍加; k = 0 时返回 O
func (c Curve[E]) ScalarMult(p Point[E], k uint64) Point[E] {
	r := Infinity[E]()
	base := p
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r = c.Add(r, base)
		}
		base = c.Double(base)
	}
	return r
}

// mulSmall 小整数标量倍 n·x, 倍加展开, 免去域元素与整数的混合运算
func mulSmall[E field.Element[E]](x E, n uint64) E {
	r := x.Sub(x)
	base := x
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Add(base)
		}
		base = base.Add(base)
	}
	return r
}
