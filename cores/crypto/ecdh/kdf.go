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

package ecdh

import (
	"crypto/sha256"
	"io"

	"github.com/doublemo/ecx/cores/crypto/ec"
	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// SessionKeySize 会话密钥默认长度
const SessionKeySize = 16

// ErrDegenerateSecret 共享点退化为无穷远点, 不能导出密钥
var ErrDegenerateSecret = errors.New("shared secret is the point at infinity")

// SessionKey 由共享点导出定长会话密钥, HKDF-SHA256
func SessionKey[E field.Element[E]](shared ec.Point[E], size int) ([]byte, error) {
	if shared.IsInfinity() {
		return nil, ErrDegenerateSecret
	}

	kdf := hkdf.New(sha256.New, shared.Bytes(), nil, []byte("ecx session key"))
	key := make([]byte, size)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Wrap(err, "derive session key")
	}
	return key, nil
}
