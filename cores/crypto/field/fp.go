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
// Date: 2022-06-20 10:36:15
// LastEditors: randyma
// LastEditTime: 2022-06-23 11:18:52
// FilePath: \ecx\cores\crypto\field\fp.go
// Description: 基域元素运算

package field

import (
	"encoding/binary"
	"strconv"

	"github.com/pkg/errors"
)

// ErrZeroInverse 零元素求逆
var ErrZeroInverse = errors.New("inverse of zero element")

// Fp F_p 域元素, 值始终约简到 [0, p)
type Fp struct {
	f *Field
	v uint64
}

// Uint64 元素的整数表示
func (a Fp) Uint64() uint64 {
	return a.v
}

// Field 元素所属域
func (a Fp) Field() *Field {
	return a.f
}

// Add 模加
func (a Fp) Add(b Fp) Fp {
	a.f.stats.adds.Inc()
	s := a.v + b.v
	if s >= a.f.p {
		s -= a.f.p
	}
	return Fp{f: a.f, v: s}
}

// Sub 模减
func (a Fp) Sub(b Fp) Fp {
	a.f.stats.subs.Inc()
	return Fp{f: a.f, v: (a.v + a.f.p - b.v) % a.f.p}
}

// Mul 模乘, p < 2^32 保证乘积不越界
func (a Fp) Mul(b Fp) Fp {
	a.f.stats.muls.Inc()
	return Fp{f: a.f, v: a.v * b.v % a.f.p}
}

// Square 平方
func (a Fp) Square() Fp {
	return a.Mul(a)
}

// Neg 加法逆元
func (a Fp) Neg() Fp {
	a.f.stats.subs.Inc()
	if a.v == 0 {
		return a
	}
	return Fp{f: a.f, v: a.f.p - a.v}
}

// Pow 幂运算, 逐位平方
func (a Fp) Pow(e uint64) Fp {
	a.f.stats.pows.Inc()
	return Fp{f: a.f, v: powmod(a.v, e, a.f.p)}
}

// Invert 乘法逆元, 费马小定理 a^(p-2).
// 零元素没有逆, 返回 ErrZeroInverse.
func (a Fp) Invert() (Fp, error) {
	if a.v == 0 {
		return Fp{}, ErrZeroInverse
	}

	a.f.stats.invs.Inc()
	return Fp{f: a.f, v: powmod(a.v, a.f.p-2, a.f.p)}, nil
}

// Sqrt 模平方根 a^((p+1)/4), 依赖 p ≡ 3 (mod 4).
// ok 为 false 表示 a 是二次非剩余, 调用方换一个值重试即可.
func (a Fp) Sqrt() (Fp, bool) {
	a.f.stats.sqrts.Inc()
	r := powmod(a.v, (a.f.p+1)/4, a.f.p)
	if r*r%a.f.p != a.v {
		return Fp{}, false
	}
	return Fp{f: a.f, v: r}, true
}

// Equal 同域元素相等比较
func (a Fp) Equal(b Fp) bool {
	return a.v == b.v
}

// IsZero 是否零元
func (a Fp) IsZero() bool {
	return a.v == 0
}

// Bytes 大端4字节定长编码
func (a Fp) Bytes() []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(a.v))
	return buf[:]
}

func (a Fp) String() string {
	return strconv.FormatUint(a.v, 10)
}

// powmod 模幂, 自低位起逐位平方
func powmod(a, e, p uint64) uint64 {
	r := uint64(1)
	a %= p
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = r * a % p
		}
		a = a * a % p
	}
	return r
}
