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

package ecx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/doublemo/ecx/cores/crypto/ec"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunFixedScalars(t *testing.T) {
	config := NewConfiguration()
	config.Seed = 7
	config.ScalarA = 123
	config.ScalarB = 456

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), zap.NewNop(), config, &out))

	text := out.String()
	require.Contains(t, text, "over F_863")
	require.Contains(t, text, "y^2 = x^3 + 5x + 7")
	require.Contains(t, text, "G = (2, 5)")
	require.Contains(t, text, "group order  839")
	require.Contains(t, text, "a = 123")
	require.Contains(t, text, "b = 456")
	require.Contains(t, text, "A = aG = (656, 72)")
	require.Contains(t, text, "B = bG = (134, 40)")
	require.Contains(t, text, "S = aB = (477, 847)")
	require.Contains(t, text, "S = bA = (477, 847)")
	require.Contains(t, text, "agree on the shared secret")
	require.Contains(t, text, "decrypted    "+config.Message)
}

func TestRunRandomCurve(t *testing.T) {
	config := NewConfiguration()
	config.Seed = 2
	config.Random = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), zap.NewNop(), config, &out))

	text := out.String()
	require.Contains(t, text, "y^2 = x^3 + 229x + 76")
	require.Contains(t, text, "G = (249, 354)")
	require.Contains(t, text, "group order  873")
	require.Contains(t, text, "a = 625")
	require.Contains(t, text, "b = 603")
	require.Contains(t, text, "A = aG = (400, 514)")
	require.Contains(t, text, "B = bG = (252, 35)")
	require.Contains(t, text, "S = aB = (148, 814)")
	require.Contains(t, text, "agree on the shared secret")
}

func TestRunExtensionField(t *testing.T) {
	config := NewConfiguration()
	config.Seed = 4
	config.Extension = true
	config.Curve = ec.Params{P: 11, A: 1, B: 6, Gx: 2, Gy: 4, N: 13}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), zap.NewNop(), config, &out))

	text := out.String()
	require.Contains(t, text, "over F_11^2")
	require.Contains(t, text, "y^2 = x^3 + 1x + 6")
	require.Contains(t, text, "G = ((8 + 6i), (9 + 1i))")
	require.Contains(t, text, "group order  143")
	require.Contains(t, text, "a = 48")
	require.Contains(t, text, "b = 15")
	require.Contains(t, text, "S = aB = ((4 + 9i), (8 + 4i))")
	require.Contains(t, text, "agree on the shared secret")
}

func TestRunBaseline(t *testing.T) {
	config := NewConfiguration()
	config.Seed = 9
	config.ScalarA = 123
	config.ScalarB = 456
	config.Baseline = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), zap.NewNop(), config, &out))

	text := out.String()
	require.Contains(t, text, "classic Diffie-Hellman baseline over F_2147483587")
	require.Contains(t, text, "generator    3")

	idx := strings.Index(text, "shared       ")
	require.GreaterOrEqual(t, idx, 0)
	rest := text[idx+len("shared       "):]
	end := strings.IndexByte(rest, '\n')
	require.Greater(t, end, 0)
	pair := strings.Split(rest[:end], " / ")
	require.Len(t, pair, 2)
	require.Equal(t, pair[0], pair[1])
}

func TestRunCanceled(t *testing.T) {
	config := NewConfiguration()
	config.Seed = 4
	config.Extension = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, zap.NewNop(), config, &out)
	require.ErrorIs(t, err, context.Canceled)
}
