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

package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplexArithmetic(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)

	a := f.Complex(3, 5)
	b := f.Complex(2, 7)

	require.True(t, a.Add(b).Equal(f.Complex(5, 1)))
	require.True(t, a.Sub(b).Equal(f.Complex(1, 9)))
	require.True(t, a.Mul(b).Equal(f.Complex(4, 9)))
	require.True(t, a.Mul(b).Equal(b.Mul(a)))
	require.True(t, a.Square().Equal(a.Mul(a)))
	require.True(t, a.Neg().Equal(f.Complex(8, 6)))
	require.True(t, a.Add(a.Neg()).IsZero())
	require.True(t, a.Conjugate().Equal(f.Complex(3, 6)))

	// i² = -1
	i := f.Complex(0, 1)
	require.True(t, i.Square().Equal(f.Complex(10, 0)))
}

func TestComplexInvert(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)

	a := f.Complex(3, 5)
	inv, err := a.Invert()
	require.NoError(t, err)
	require.True(t, inv.Equal(f.Complex(3, 6)))
	require.True(t, a.Mul(inv).Equal(f.Complex(1, 0)))

	// 与 a^(p²-2) 一致
	p := f.Prime()
	require.True(t, inv.Equal(a.Pow(p*p-2)))

	_, err = f.Complex(0, 0).Invert()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrZeroInverse))
}

// 穷举所有非零元素, 验证范数逆元公式在整个扩域上成立
func TestComplexInvertExhaustive(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)

	one := f.Complex(1, 0)
	for re := uint64(0); re < 7; re++ {
		for im := uint64(0); im < 7; im++ {
			if re == 0 && im == 0 {
				continue
			}
			a := f.Complex(re, im)
			inv, err := a.Invert()
			require.NoError(t, err, "inv(%s)", a)
			require.True(t, a.Mul(inv).Equal(one), "%s * inv", a)
		}
	}
}

func TestComplexPow(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)

	a := f.Complex(3, 5)
	require.True(t, a.Pow(0).Equal(f.Complex(1, 0)))
	require.True(t, a.Pow(1).Equal(a))
	require.True(t, a.Pow(2).Equal(a.Square()))

	// 乘法群阶数为 p²-1
	p := f.Prime()
	require.True(t, a.Pow(p*p-1).Equal(f.Complex(1, 0)))
}

func TestComplexNorm(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)

	require.Equal(t, uint64(1), f.Complex(3, 5).Norm().Uint64())
	require.Equal(t, uint64(9), f.Complex(3, 0).Norm().Uint64())
	require.True(t, f.Complex(0, 0).Norm().IsZero())
}

func TestComplexBytesString(t *testing.T) {
	f, err := New(863)
	require.NoError(t, err)

	require.Equal(t, []byte{0, 0, 0, 2, 0, 0, 0, 5}, f.Complex(2, 5).Bytes())

	require.Equal(t, "0", f.Complex(0, 0).String())
	require.Equal(t, "5", f.Complex(5, 0).String())
	require.Equal(t, "3i", f.Complex(0, 3).String())
	require.Equal(t, "(2 + 5i)", f.Complex(2, 5).String())
}
