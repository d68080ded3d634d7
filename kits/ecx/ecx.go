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
// Author: randyma 435420057@qq.com
// Date: 2022-05-09 09:53:57
// LastEditors: randyma 435420057@qq.com
// LastEditTime: 2022-07-01 15:22:40
// FilePath: \ecx\kits\ecx\ecx.go
// Description: 密钥交换演示主流程
package ecx

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/doublemo/ecx/cores/crypto/dh"
	"github.com/doublemo/ecx/cores/crypto/ec"
	"github.com/doublemo/ecx/cores/crypto/ecdh"
	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/doublemo/ecx/cores/crypto/xxtea"
	"github.com/doublemo/ecx/internal/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSecretMismatch 双方推导出的共享秘密不一致
var ErrSecretMismatch = errors.New("derived shared secrets differ")

// generatorAttempts 基域基点搜索的尝试上限.
// 约一半的 x 可开方提升, 256 次全部落空的概率可以忽略.
const generatorAttempts = 256

// Run 执行一次完整的密钥交换演示.
// 演示输出写入 out, 运行日志走 log, 指标在结束时汇总.
func Run(ctx context.Context, log *zap.Logger, config *Configuration, out io.Writer) error {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	log.Info("Random source ready", zap.Int64("seed", seed))

	m := metrics.New(log, config.Metrics)
	defer m.Close()

	var err error
	if config.Extension {
		err = runExt(ctx, log, config, rng, m, out)
	} else {
		err = runBase(ctx, log, config, rng, m, out)
	}

	if err != nil {
		return err
	}

	if config.Baseline {
		runClassic(rng, reporter{w: out})
	}
	return nil
}

// runBase 在基域 F_p 上执行交换
func runBase(ctx context.Context, log *zap.Logger, config *Configuration, rng *rand.Rand, m *metrics.Metrics, out io.Writer) error {
	f, c, g, declared, err := buildGroup(log, config, rng)
	if err != nil {
		return err
	}

	n, exact, err := subgroupOrder(ctx, log, f, c, g, declared, config.OrderBound)
	if err != nil {
		return err
	}

	rep := reporter{w: out}
	rep.title("elliptic-curve Diffie-Hellman over F_%d", f.Prime())
	rep.line("curve        y^2 = x^3 + %sx + %s", c.A(), c.B())
	rep.line("base point   G = %s", g)
	if exact {
		m.SetSubgroupOrder(n)
		rep.line("group order  %d", n)
	} else {
		rep.line("group order  greater than %d", config.OrderBound)
	}
	rep.blank()

	return exchange(log, config, rng, m, rep, f, c, g, n)
}

// runExt 在二次扩域 F_p² 上执行交换.
// 曲线系数沿用基域配置, 点群取自扩域.
func runExt(ctx context.Context, log *zap.Logger, config *Configuration, rng *rand.Rand, m *metrics.Metrics, out io.Writer) error {
	f, base, _, _, err := buildGroup(log, config, rng)
	if err != nil {
		return err
	}

	if f.Prime() >= 1<<16 {
		log.Warn("Extension base point search over a large field may take a long time", zap.Uint64("p", f.Prime()))
	}

	c := ec.Complexify(base)
	g, err := ec.FindGeneratorExt(ctx, rng, f, c, extAttempts(f.Prime()))
	if err != nil {
		return errors.Wrap(err, "search extension base point")
	}
	log.Info("Extension base point ready", zap.String("base", g.String()))

	n, exact, err := subgroupOrder(ctx, log, f, c, g, 0, config.OrderBound)
	if err != nil {
		return err
	}

	rep := reporter{w: out}
	rep.title("elliptic-curve Diffie-Hellman over F_%d^2", f.Prime())
	rep.line("curve        y^2 = x^3 + %sx + %s", c.A(), c.B())
	rep.line("base point   G = %s", g)
	if exact {
		m.SetSubgroupOrder(n)
		rep.line("group order  %d", n)
	} else {
		rep.line("group order  greater than %d", config.OrderBound)
	}
	rep.blank()

	return exchange(log, config, rng, m, rep, f, c, g, n)
}

// buildGroup 准备基域曲线与基点.
// 固定模式走配置校验构建, 随机模式重采样系数并搜索基点.
func buildGroup(log *zap.Logger, config *Configuration, rng *rand.Rand) (*field.Field, ec.Curve[field.Fp], ec.Point[field.Fp], uint64, error) {
	if !config.Random {
		f, c, g, err := config.Curve.Build()
		return f, c, g, config.Curve.N, err
	}

	f, err := field.New(config.Curve.P)
	if err != nil {
		return nil, ec.Curve[field.Fp]{}, ec.Point[field.Fp]{}, 0, err
	}

	c := ec.GenerateCurve(rng, f)
	g, err := ec.FindGenerator(rng, f, c, generatorAttempts)
	if err != nil {
		return nil, ec.Curve[field.Fp]{}, ec.Point[field.Fp]{}, 0, errors.Wrap(err, "search base point")
	}

	log.Info("Generated random curve",
		zap.Uint64("p", f.Prime()),
		zap.String("a", c.A().String()),
		zap.String("b", c.B().String()),
		zap.String("base", g.String()))
	return f, c, g, 0, nil
}

// subgroupOrder 确定基点阶.
// 配置已声明时直接采用, 否则在步数上限内暴力搜索;
// 搜索落空退回 [1, p-1] 作为私钥采样区间, 交换本身仍然正确.
func subgroupOrder[E field.Element[E]](ctx context.Context, log *zap.Logger, f *field.Field, c ec.Curve[E], g ec.Point[E], declared, bound uint64) (uint64, bool, error) {
	if declared > 0 {
		return declared, true, nil
	}

	n, err := ec.Order(ctx, c, g, bound)
	switch {
	case err == nil:
		log.Info("Base point order found", zap.Uint64("order", n))
		return n, true, nil

	case errors.Is(err, ec.ErrOrderNotFound):
		log.Warn("Base point order not found within bound, falling back to the field size", zap.Uint64("bound", bound))
		return f.Prime(), false, nil

	default:
		return 0, false, err
	}
}

// exchange 两方交换: 生成密钥对, 互换公钥, 各自推导共享秘密并核对,
// 最后从共享秘密派生会话密钥演示一次对称加解密.
func exchange[E field.Element[E]](log *zap.Logger, config *Configuration, rng *rand.Rand, m *metrics.Metrics, rep reporter, f *field.Field, c ec.Curve[E], g ec.Point[E], n uint64) error {
	start := f.Stats()

	alice, err := newParty(rng, "Alice", c, g, n, config.ScalarA)
	if err != nil {
		return err
	}
	m.CountKeygen(1)

	bob, err := newParty(rng, "Bob", c, g, n, config.ScalarB)
	if err != nil {
		return err
	}
	m.CountKeygen(1)

	rep.step(1, "Alice picks a private scalar a = %d", alice.Secret())
	rep.step(2, "Bob   picks a private scalar b = %d", bob.Secret())
	rep.step(3, "Alice publishes A = aG = %s", alice.Public())
	rep.step(4, "Bob   publishes B = bG = %s", bob.Public())

	began := time.Now()
	sa := alice.Derive(bob.Public())
	sb := bob.Derive(alice.Public())
	m.RecordLatency(time.Since(began))
	m.CountExchange(1)

	rep.step(5, "Alice derives S = aB = %s", sa)
	rep.step(6, "Bob   derives S = bA = %s", sb)

	if !sa.Equal(sb) {
		m.CountMismatch()
		log.Error("Shared secrets differ",
			zap.String("alice", sa.String()),
			zap.String("bob", sb.String()))
		return ErrSecretMismatch
	}

	m.CountMatch()
	rep.step(7, "both parties agree on the shared secret")

	// 双方各自从共享秘密拉伸会话密钥, Alice 加密, Bob 解密
	keyA, err := ecdh.SessionKey(sa, ecdh.SessionKeySize)
	if err != nil {
		return errors.Wrap(err, "derive session key")
	}
	keyB, err := ecdh.SessionKey(sb, ecdh.SessionKeySize)
	if err != nil {
		return errors.Wrap(err, "derive session key")
	}

	cipher := xxtea.EncryptStdToURLString(config.Message, string(keyA))
	plain, err := xxtea.DecryptURLToStdString(cipher, string(keyB))
	if err != nil {
		return errors.Wrap(err, "session key round trip")
	}
	if plain != config.Message {
		return errors.New("session key round trip: plaintext mismatch")
	}

	rep.blank()
	rep.line("session key  %x", keyA)
	rep.line("xxtea cipher %s", cipher)
	rep.line("decrypted    %s", plain)

	m.FieldOps(f.Stats().Delta(start))
	log.Info("Exchange complete",
		zap.String("alice", alice.ID().String()),
		zap.String("bob", bob.ID().String()),
		zap.Uint64("order", n))
	return nil
}

// newParty 固定私钥优先, 未配置时在 [1, n-1] 内随机
func newParty[E field.Element[E]](rng *rand.Rand, name string, c ec.Curve[E], g ec.Point[E], n, fixed uint64) (*ecdh.Party[E], error) {
	if fixed > 0 {
		return ecdh.PartyFromScalar(name, c, g, fixed)
	}
	return ecdh.NewParty(rng, name, c, g, n)
}

// runClassic 经典模素数 Diffie-Hellman 对照, 与曲线版共用随机源
func runClassic(rng *rand.Rand, rep reporter) {
	aliceSecret, alicePublic := dh.Exchange(rng)
	bobSecret, bobPublic := dh.Exchange(rng)

	rep.blank()
	rep.title("classic Diffie-Hellman baseline over F_%s", dh.DH1PRIME)
	rep.line("generator    %s", dh.DH1BASE)
	rep.line("Alice public %s", alicePublic)
	rep.line("Bob   public %s", bobPublic)
	rep.line("shared       %s / %s", dh.Key(aliceSecret, bobPublic), dh.Key(bobSecret, alicePublic))
}

// extAttempts 扩域基点搜索的尝试上限.
// 随机坐标对命中曲线的概率约 1/p², 小素数给足 20p²,
// 大素数封顶避免溢出.
func extAttempts(p uint64) uint64 {
	if p < 1<<16 {
		return 20 * p * p
	}
	return 1 << 36
}
