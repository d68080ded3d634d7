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

import "go.uber.org/atomic"

// stats 运算计数器, 原子累加, 多协程共享 Field 时计数仍然可靠
type stats struct {
	adds  atomic.Uint64
	subs  atomic.Uint64
	muls  atomic.Uint64
	invs  atomic.Uint64
	pows  atomic.Uint64
	sqrts atomic.Uint64
}

func (s *stats) snapshot() Stats {
	return Stats{
		Adds:  s.adds.Load(),
		Subs:  s.subs.Load(),
		Muls:  s.muls.Load(),
		Invs:  s.invs.Load(),
		Pows:  s.pows.Load(),
		Sqrts: s.sqrts.Load(),
	}
}

// Stats 域运算计数快照.
// Neg 计入减法, Square 计入乘法; Pow, Invert, Sqrt 各计一次,
// 内部的逐位平方不重复计数.
type Stats struct {
	Adds  uint64 `json:"adds"`
	Subs  uint64 `json:"subs"`
	Muls  uint64 `json:"muls"`
	Invs  uint64 `json:"invs"`
	Pows  uint64 `json:"pows"`
	Sqrts uint64 `json:"sqrts"`
}

// Total 各类运算总数
func (s Stats) Total() uint64 {
	return s.Adds + s.Subs + s.Muls + s.Invs + s.Pows + s.Sqrts
}

// Delta 相对较早快照的增量
func (s Stats) Delta(since Stats) Stats {
	return Stats{
		Adds:  s.Adds - since.Adds,
		Subs:  s.Subs - since.Subs,
		Muls:  s.Muls - since.Muls,
		Invs:  s.Invs - since.Invs,
		Pows:  s.Pows - since.Pows,
		Sqrts: s.Sqrts - since.Sqrts,
	}
}
