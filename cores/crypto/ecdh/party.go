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
// Date: 2022-06-28 14:26:05
// LastEditors: randyma
// LastEditTime: 2022-06-30 11:54:12
// FilePath: \ecx\cores\crypto\ecdh\party.go
// Description: 椭圆曲线 Diffie-Hellman 参与方

// Package ecdh 实现椭圆曲线上的 Diffie-Hellman 密钥交换.
//
// 1. 双方约定曲线与基点 G.
//
// 2. Alice 选私钥 d_a, 公开 Q_a = d_a·G; Bob 选私钥 d_b, 公开 Q_b = d_b·G.
//
// 3. Alice 计算 d_a·Q_b, Bob 计算 d_b·Q_a.
//
// 4. 标量乘可交换, d_a·(d_b·G) = d_b·(d_a·G), 双方得到同一个共享点.
package ecdh

import (
	"math/rand"

	"github.com/doublemo/ecx/cores/crypto/ec"
	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrGroupTooSmall 子群阶数不足以取私钥
	ErrGroupTooSmall = errors.New("subgroup order must be at least 2")

	// ErrZeroScalar 私钥不允许为零
	ErrZeroScalar = errors.New("secret scalar must not be zero")
)

// Party 密钥交换参与方.
// 私钥仅本方持有, Secret 访问器只服务于演示输出.
type Party[E field.Element[E]] struct {
	id    uuid.UUID
	name  string
	curve ec.Curve[E]
	base  ec.Point[E]
	priv  uint64
	pub   ec.Point[E]
}

// NewParty 创建参与方并生成密钥对, 私钥均匀取自 [1, n-1]
func NewParty[E field.Element[E]](r *rand.Rand, name string, c ec.Curve[E], g ec.Point[E], n uint64) (*Party[E], error) {
	if n < 2 {
		return nil, ErrGroupTooSmall
	}

	k := 1 + uint64(r.Int63n(int64(n-1)))
	return PartyFromScalar(name, c, g, k)
}

// PartyFromScalar 以给定私钥创建参与方, 用于可复现的演示
func PartyFromScalar[E field.Element[E]](name string, c ec.Curve[E], g ec.Point[E], k uint64) (*Party[E], error) {
	if k == 0 {
		return nil, ErrZeroScalar
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "generate party id")
	}

	return &Party[E]{
		id:    id,
		name:  name,
		curve: c,
		base:  g,
		priv:  k,
		pub:   c.ScalarMult(g, k),
	}, nil
}

// ID 参与方标识
func (p *Party[E]) ID() uuid.UUID {
	return p.id
}

// Name 参与方名称
func (p *Party[E]) Name() string {
	return p.name
}

// Public 公钥点 d·G
func (p *Party[E]) Public() ec.Point[E] {
	return p.pub
}

// Secret 私钥标量, 仅用于演示输出
func (p *Party[E]) Secret() uint64 {
	return p.priv
}

// Derive 用对方公钥计算共享点 d·Q
func (p *Party[E]) Derive(peer ec.Point[E]) ec.Point[E] {
	return p.curve.ScalarMult(peer, p.priv)
}
