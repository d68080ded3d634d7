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

func TestDefaultParams(t *testing.T) {
	p := Default()
	require.NoError(t, p.Check())

	f, c, g, err := p.Build()
	require.NoError(t, err)
	require.Equal(t, uint64(863), f.Prime())
	require.True(t, c.IsOnCurve(g))
	require.Equal(t, uint64(2), g.X().Uint64())
	require.Equal(t, uint64(5), g.Y().Uint64())
	require.True(t, c.ScalarMult(g, p.N).IsInfinity())
}

func TestParamsCheck(t *testing.T) {
	// 域参数非法
	p := Default()
	p.P = 13
	err := p.Check()
	require.Error(t, err)
	require.True(t, errors.Is(err, field.ErrBadResidue))

	p = Default()
	p.P = 861
	require.True(t, errors.Is(p.Check(), field.ErrNotPrime))

	// 奇异曲线
	p = Default()
	p.A, p.B = 0, 0
	require.True(t, errors.Is(p.Check(), ErrSingular))

	// 基点不在曲线上
	p = Default()
	p.Gy = 6
	err = p.Check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not on the curve")

	// 声明的阶不吻合
	p = Default()
	p.N = 838
	err = p.Check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "order")

	// 阶未知时跳过阶校验
	p = Default()
	p.N = 0
	require.NoError(t, p.Check())
}
