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
// Date: 2022-06-21 14:02:48
// LastEditors: randyma
// LastEditTime: 2022-06-23 11:20:31
// FilePath: \ecx\cores\crypto\field\fp2.go
// Description: 二次扩域 F_p[i]

package field

// Fp2 二次扩域 F_p[i] 元素 Re + Im*i, 其中 i² = -1.
// p ≡ 3 (mod 4) 时 -1 为二次非剩余, x²+1 不可约, 扩域良定义.
// 扩域运算全部分解为基域运算, 计入同一份 Stats.
type Fp2 struct {
	Re Fp
	Im Fp
}

// Add 逐分量模加
func (a Fp2) Add(b Fp2) Fp2 {
	return Fp2{Re: a.Re.Add(b.Re), Im: a.Im.Add(b.Im)}
}

// Sub 逐分量模减
func (a Fp2) Sub(b Fp2) Fp2 {
	return Fp2{Re: a.Re.Sub(b.Re), Im: a.Im.Sub(b.Im)}
}

// Mul 复数乘法 (a+bi)(c+di) = (ac-bd) + (bc+ad)i
func (a Fp2) Mul(b Fp2) Fp2 {
	return Fp2{
		Re: a.Re.Mul(b.Re).Sub(a.Im.Mul(b.Im)),
		Im: a.Im.Mul(b.Re).Add(a.Re.Mul(b.Im)),
	}
}

// Square 平方
func (a Fp2) Square() Fp2 {
	return a.Mul(a)
}

// Neg 加法逆元
func (a Fp2) Neg() Fp2 {
	return Fp2{Re: a.Re.Neg(), Im: a.Im.Neg()}
}

// Conjugate 共轭 a - bi
func (a Fp2) Conjugate() Fp2 {
	return Fp2{Re: a.Re, Im: a.Im.Neg()}
}

// Norm 范数 a² + b², 取值在基域中
func (a Fp2) Norm() Fp {
	return a.Re.Square().Add(a.Im.Square())
}

// Invert 乘法逆元 (a-bi)/(a²+b²).
// 因为 -1 是二次非剩余, 范数为零当且仅当元素为零.
func (a Fp2) Invert() (Fp2, error) {
	n, err := a.Norm().Invert()
	if err != nil {
		return Fp2{}, err
	}

	c := a.Conjugate()
	return Fp2{Re: c.Re.Mul(n), Im: c.Im.Mul(n)}, nil
}

// Pow 幂运算, 自低位起逐位平方
func (a Fp2) Pow(e uint64) Fp2 {
	r := Fp2{Re: a.Re.f.One(), Im: a.Re.f.Zero()}
	base := a
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Square()
	}
	return r
}

// Equal 同域元素相等比较
func (a Fp2) Equal(b Fp2) bool {
	return a.Re.Equal(b.Re) && a.Im.Equal(b.Im)
}

// IsZero 是否零元
func (a Fp2) IsZero() bool {
	return a.Re.IsZero() && a.Im.IsZero()
}

// Bytes 实部与虚部编码拼接, 8字节定长
func (a Fp2) Bytes() []byte {
	return append(a.Re.Bytes(), a.Im.Bytes()...)
}

func (a Fp2) String() string {
	switch {
	case a.Im.IsZero():
		return a.Re.String()
	case a.Re.IsZero():
		return a.Im.String() + "i"
	default:
		return "(" + a.Re.String() + " + " + a.Im.String() + "i)"
	}
}
