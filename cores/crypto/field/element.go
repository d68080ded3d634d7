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

// Element 域元素公共约束, Fp 与 Fp2 均满足.
// 曲线运算以此为类型参数, 同一套公式同时覆盖基域与扩域.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Square() E
	Neg() E
	Invert() (E, error)
	Equal(E) bool
	IsZero() bool
	Bytes() []byte
	String() string
}
