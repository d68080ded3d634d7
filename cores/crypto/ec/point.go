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
// Date: 2022-06-24 09:12:20
// LastEditors: randyma
// LastEditTime: 2022-06-25 16:33:08
// FilePath: \ecx\cores\crypto\ec\point.go
// Description: 曲线点

package ec

import "github.com/doublemo/ecx/cores/crypto/field"

// Point 曲线点: 仿射点 (x, y) 或无穷远点 O.
// 零值即无穷远点.
type Point[E field.Element[E]] struct {
	x, y   E
	affine bool
}

// Infinity 无穷远点, 群的单位元
func Infinity[E field.Element[E]]() Point[E] {
	return Point[E]{}
}

// NewPoint 仿射点 (x, y)
func NewPoint[E field.Element[E]](x, y E) Point[E] {
	return Point[E]{x: x, y: y, affine: true}
}

// IsInfinity 是否为无穷远点
func (p Point[E]) IsInfinity() bool {
	return !p.affine
}

// X 横坐标, 仅对仿射点有意义
func (p Point[E]) X() E {
	return p.x
}

// Y 纵坐标, 仅对仿射点有意义
func (p Point[E]) Y() E {
	return p.y
}

// Neg 取负: (x, y) 映射到 (x, -y), O 映射到自身
func (p Point[E]) Neg() Point[E] {
	if !p.affine {
		return p
	}
	return Point[E]{x: p.x, y: p.y.Neg(), affine: true}
}

// Equal 点相等比较
func (p Point[E]) Equal(q Point[E]) bool {
	switch {
	case !p.affine && !q.affine:
		return true
	case p.affine && q.affine:
		return p.x.Equal(q.x) && p.y.Equal(q.y)
	default:
		return false
	}
}

// Bytes 编码: 无穷远点为单字节 0x00, 仿射点为 0x04 || x || y
func (p Point[E]) Bytes() []byte {
	if !p.affine {
		return []byte{0x00}
	}

	buf := make([]byte, 0, 1+2*len(p.x.Bytes()))
	buf = append(buf, 0x04)
	buf = append(buf, p.x.Bytes()...)
	return append(buf, p.y.Bytes()...)
}

func (p Point[E]) String() string {
	if !p.affine {
		return "O"
	}
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}
