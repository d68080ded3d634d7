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
// Date: 2022-06-20 10:12:33
// LastEditors: randyma
// LastEditTime: 2022-06-22 09:41:07
// FilePath: \ecx\cores\crypto\field\field.go
// Description: 素数域定义与参数校验

// Package field 实现素数域 F_p 及其二次扩域上的模运算.
// 所有运算从第一性原理出发: 不依赖 big.Int, 模数限制在 2^32 以下,
// 元素与乘积均可放入一个机器字.
package field

import (
	"math/rand"

	"github.com/pkg/errors"
)

// 域参数校验错误
var (
	ErrNotPrime   = errors.New("modulus is not prime")
	ErrTooSmall   = errors.New("modulus must be at least 7")
	ErrTooLarge   = errors.New("modulus must fit in 32 bits")
	ErrBadResidue = errors.New("modulus must be congruent to 3 modulo 4")
)

// MaxPrime 模数上限
const MaxPrime = 1<<32 - 1

// Field 素数域 F_p, 要求 p 为素数, p >= 7 且 p ≡ 3 (mod 4).
// 同余条件保证平方根有闭式解 a^((p+1)/4), 同时 -1 为二次非剩余,
// x²+1 在 F_p 上不可约, 可直接扩域.
// 参与同一运算的元素必须来自同一个 Field.
type Field struct {
	p     uint64
	stats stats
}

// New 创建素数域
func New(p uint64) (*Field, error) {
	if p > MaxPrime {
		return nil, errors.Wrapf(ErrTooLarge, "p = %d", p)
	}
	if p < 7 {
		return nil, errors.Wrapf(ErrTooSmall, "p = %d", p)
	}
	if !IsPrime(p) {
		return nil, errors.Wrapf(ErrNotPrime, "p = %d", p)
	}
	if p%4 != 3 {
		return nil, errors.Wrapf(ErrBadResidue, "p = %d, p mod 4 = %d", p, p%4)
	}

	return &Field{p: p}, nil
}

// Prime 域特征
func (f *Field) Prime() uint64 {
	return f.p
}

// Elt 由无符号整数创建域元素, 自动约简到 [0, p)
func (f *Field) Elt(v uint64) Fp {
	return Fp{f: f, v: v % f.p}
}

// Zero 加法单位元
func (f *Field) Zero() Fp {
	return Fp{f: f}
}

// One 乘法单位元
func (f *Field) One() Fp {
	return Fp{f: f, v: 1}
}

// Random 随机域元素, 均匀取自 [0, p)
func (f *Field) Random(r *rand.Rand) Fp {
	return Fp{f: f, v: uint64(r.Int63n(int64(f.p)))}
}

// Complex 创建二次扩域元素 re + im*i
func (f *Field) Complex(re, im uint64) Fp2 {
	return Fp2{Re: f.Elt(re), Im: f.Elt(im)}
}

// Stats 返回累计运算计数
func (f *Field) Stats() Stats {
	return f.stats.snapshot()
}

// IsPrime 素性判断, 试除到平方根
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}

	if n%2 == 0 {
		return n == 2
	}

	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
