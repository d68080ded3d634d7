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
	"errors"
	"testing"

	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/stretchr/testify/require"
)

// 默认曲线 y² = x³ + 5x + 7 over F_863, 基点 (2, 5)
func defaultGroup(t *testing.T) (*field.Field, Curve[field.Fp], Point[field.Fp]) {
	t.Helper()
	f, c, g, err := Default().Build()
	require.NoError(t, err)
	return f, c, g
}

func TestNewRejectsSingular(t *testing.T) {
	f, err := field.New(11)
	require.NoError(t, err)

	// 4a³ + 27b² = 0: a=0,b=0 以及 a=8,b=2 (即 a=-3, b=2)
	_, err = New(f.Zero(), f.Zero())
	require.True(t, errors.Is(err, ErrSingular))

	_, err = New(f.Elt(8), f.Elt(2))
	require.True(t, errors.Is(err, ErrSingular))

	c, err := New(f.Elt(1), f.Elt(6))
	require.NoError(t, err)
	require.Equal(t, uint64(1), c.A().Uint64())
	require.Equal(t, uint64(6), c.B().Uint64())
	require.False(t, c.Discriminant().IsZero())
}

func TestPointBasics(t *testing.T) {
	f, _, g := defaultGroup(t)

	o := Infinity[field.Fp]()
	require.True(t, o.IsInfinity())
	require.False(t, g.IsInfinity())
	require.Equal(t, "O", o.String())
	require.Equal(t, "(2, 5)", g.String())

	require.True(t, o.Equal(Infinity[field.Fp]()))
	require.False(t, o.Equal(g))
	require.False(t, g.Equal(o))
	require.True(t, g.Equal(NewPoint(f.Elt(2), f.Elt(5))))
	require.False(t, g.Equal(NewPoint(f.Elt(2), f.Elt(858))))

	neg := g.Neg()
	require.Equal(t, uint64(2), neg.X().Uint64())
	require.Equal(t, uint64(858), neg.Y().Uint64())
	require.True(t, o.Neg().IsInfinity())

	// 零值就是无穷远点
	var zero Point[field.Fp]
	require.True(t, zero.IsInfinity())
}

func TestPointBytes(t *testing.T) {
	_, _, g := defaultGroup(t)

	require.Equal(t, []byte{0x00}, Infinity[field.Fp]().Bytes())
	require.Equal(t, []byte{0x04, 0, 0, 0, 2, 0, 0, 0, 5}, g.Bytes())
}

func TestIsOnCurve(t *testing.T) {
	f, c, g := defaultGroup(t)

	require.True(t, c.IsOnCurve(g))
	require.True(t, c.IsOnCurve(Infinity[field.Fp]()))
	require.True(t, c.IsOnCurve(g.Neg()))
	require.False(t, c.IsOnCurve(NewPoint(f.Elt(1), f.Elt(1))))
}

func TestAddIdentity(t *testing.T) {
	_, c, g := defaultGroup(t)
	o := Infinity[field.Fp]()

	require.True(t, c.Add(o, o).IsInfinity())
	require.True(t, c.Add(g, o).Equal(g))
	require.True(t, c.Add(o, g).Equal(g))
	require.True(t, c.Add(g, g.Neg()).IsInfinity())
}

func TestAddVectors(t *testing.T) {
	f, c, g := defaultGroup(t)

	g2 := c.Add(g, g)
	require.True(t, g2.Equal(NewPoint(f.Elt(836), f.Elt(821))))
	require.True(t, c.Double(g).Equal(g2))

	g3 := c.Add(g2, g)
	require.True(t, g3.Equal(NewPoint(f.Elt(513), f.Elt(625))))
	require.True(t, c.Add(g, g2).Equal(g3))

	g5 := c.Add(g2, g3)
	require.True(t, g5.Equal(NewPoint(f.Elt(409), f.Elt(245))))

	// 结合律抽查: (G + 2G) + 3G = G + (2G + 3G)
	require.True(t, c.Add(c.Add(g, g2), g3).Equal(c.Add(g, c.Add(g2, g3))))
}

func TestAddClosedOnCurve(t *testing.T) {
	_, c, g := defaultGroup(t)

	p := g
	for i := 0; i < 64; i++ {
		p = c.Add(p, g)
		require.True(t, c.IsOnCurve(p), "step %d", i)
	}
}

// y = 0 的二阶点: 自加得 O
func TestDoubleTwoTorsion(t *testing.T) {
	f, err := field.New(11)
	require.NoError(t, err)

	c, err := New(f.One(), f.Zero())
	require.NoError(t, err)

	p := NewPoint(f.Zero(), f.Zero())
	require.True(t, c.IsOnCurve(p))
	require.True(t, c.Double(p).IsInfinity())
	require.True(t, c.Add(p, p).IsInfinity())
}

func TestScalarMult(t *testing.T) {
	f, c, g := defaultGroup(t)

	require.True(t, c.ScalarMult(g, 0).IsInfinity())
	require.True(t, c.ScalarMult(g, 1).Equal(g))

	vectors := map[uint64]Point[field.Fp]{
		2:   NewPoint(f.Elt(836), f.Elt(821)),
		3:   NewPoint(f.Elt(513), f.Elt(625)),
		5:   NewPoint(f.Elt(409), f.Elt(245)),
		123: NewPoint(f.Elt(656), f.Elt(72)),
		456: NewPoint(f.Elt(134), f.Elt(40)),
	}
	for k, want := range vectors {
		require.True(t, c.ScalarMult(g, k).Equal(want), "k = %d", k)
	}

	// 阶为 839: 839G = O, 838G = -G, 840G = G
	require.True(t, c.ScalarMult(g, 839).IsInfinity())
	require.True(t, c.ScalarMult(g, 838).Equal(g.Neg()))
	require.True(t, c.ScalarMult(g, 840).Equal(g))
}

// 标量乘交换律 a·(b·G) = b·(a·G), 密钥交换正确性的根基
func TestScalarMultCommutes(t *testing.T) {
	_, c, g := defaultGroup(t)

	cases := [][2]uint64{{123, 456}, {2, 838}, {7, 91}, {839, 3}}
	for _, kk := range cases {
		ab := c.ScalarMult(c.ScalarMult(g, kk[1]), kk[0])
		ba := c.ScalarMult(c.ScalarMult(g, kk[0]), kk[1])
		require.True(t, ab.Equal(ba), "a = %d, b = %d", kk[0], kk[1])
	}
}

// 扩域上同一套公式: y² = x³ + x + 6 over F_121, 基点 (0, 4i) 的阶为 11
func TestExtensionCurveGroup(t *testing.T) {
	f, err := field.New(11)
	require.NoError(t, err)

	base, err := New(f.Elt(1), f.Elt(6))
	require.NoError(t, err)
	c := Complexify(base)

	g := NewPoint(f.Complex(0, 0), f.Complex(0, 4))
	require.True(t, c.IsOnCurve(g))

	require.True(t, c.ScalarMult(g, 2).Equal(NewPoint(f.Complex(6, 0), f.Complex(0, 5))))
	require.True(t, c.ScalarMult(g, 3).Equal(NewPoint(f.Complex(1, 0), f.Complex(0, 5))))
	require.True(t, c.ScalarMult(g, 5).Equal(NewPoint(f.Complex(4, 0), f.Complex(0, 6))))
	require.True(t, c.ScalarMult(g, 11).IsInfinity())
	require.True(t, c.ScalarMult(g, 12).Equal(g))
}
