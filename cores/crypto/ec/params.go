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
// Date: 2022-06-24 11:20:09
// LastEditors: randyma
// LastEditTime: 2022-06-28 10:02:13
// FilePath: \ecx\cores\crypto\ec\params.go
// Description: 曲线参数集

package ec

import (
	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/pkg/errors"
)

// Params 曲线参数集, 供配置文件与命令行装载
type Params struct {
	P  uint64 `yaml:"p" json:"p" usage:"Field prime. Must be at least 7 and congruent to 3 modulo 4."`
	A  uint64 `yaml:"a" json:"a" usage:"Curve coefficient a."`
	B  uint64 `yaml:"b" json:"b" usage:"Curve coefficient b."`
	Gx uint64 `yaml:"gx" json:"gx" usage:"Base point x coordinate."`
	Gy uint64 `yaml:"gy" json:"gy" usage:"Base point y coordinate."`
	N  uint64 `yaml:"n" json:"n" usage:"Order of the base point. 0 means unknown."`
}

// Default 默认曲线 y² = x³ + 5x + 7 over F_863.
// 863 = 2⁵·3³ - 1 为素数且 ≡ 3 (mod 4);
// 基点 (2, 5) 的阶 839 也是素数.
func Default() Params {
	return Params{P: 863, A: 5, B: 7, Gx: 2, Gy: 5, N: 839}
}

// Check 校验参数能构成合法的曲线群
func (p Params) Check() error {
	_, _, _, err := p.Build()
	return err
}

// Build 依据参数构建域, 曲线与基点.
// 域参数非法, 曲线奇异, 基点不在曲线上或声明的阶不吻合都会报错.
func (p Params) Build() (*field.Field, Curve[field.Fp], Point[field.Fp], error) {
	var zc Curve[field.Fp]
	var zp Point[field.Fp]

	f, err := field.New(p.P)
	if err != nil {
		return nil, zc, zp, err
	}

	c, err := New(f.Elt(p.A), f.Elt(p.B))
	if err != nil {
		return nil, zc, zp, errors.Wrapf(err, "a = %d, b = %d", p.A, p.B)
	}

	g := NewPoint(f.Elt(p.Gx), f.Elt(p.Gy))
	if !c.IsOnCurve(g) {
		return nil, zc, zp, errors.Errorf("base point %s is not on the curve", g)
	}

	if p.N > 0 && !c.ScalarMult(g, p.N).IsInfinity() {
		return nil, zc, zp, errors.Errorf("base point %s does not have order %d", g, p.N)
	}

	return f, c, g, nil
}
