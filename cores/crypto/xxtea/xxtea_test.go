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
// Author: Randyma
// Date: 2022-05-31 23:47:33
// LastEditors: randyma
// LastEditTime: 2022-06-30 16:40:08
// Description:

package xxtea

import (
	"bytes"
	"testing"
)

func Test_XXTEA(t *testing.T) {
	str := "Hello World! 你好，中国！asdaczvhgjzxc!@#$%^&*()_+[]{}|:<>?;',./"
	key := "1234567890"

	encrypt_data := Encrypt([]byte(str), []byte(key))
	decrypt_data := string(Decrypt(encrypt_data, []byte(key)))
	if str != decrypt_data {
		t.Error(str)
		t.Error(decrypt_data)
		t.Error("fail!")
	}

	//Test format between
	url_str := EncryptStdToURLString(str, key)
	std_str, err := DecryptURLToStdString(url_str, key)
	if err != nil {
		t.Error(err)
	}
	if std_str != str {
		t.Error(std_str)
		t.Error("url round trip fail!")
	}
}

// 二进制密钥, 会话密钥场景
func Test_XXTEA_BinaryKey(t *testing.T) {
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	data := []byte("short")

	out := Decrypt(Encrypt(data, key), key)
	if !bytes.Equal(data, out) {
		t.Error(out)
		t.Error("fail!")
	}

	wrong := make([]byte, len(key))
	copy(wrong, key)
	wrong[0] ^= 0xff
	if bytes.Equal(data, Decrypt(Encrypt(data, key), wrong)) {
		t.Error("wrong key must not decrypt")
	}

	if len(Encrypt(nil, key)) != 0 {
		t.Error("empty input must stay empty")
	}
}

func Test_XXTEA_URLDecodeError(t *testing.T) {
	if _, err := DecryptURLToStdString("%%%not-base64%%%", "k"); err == nil {
		t.Error("expected a decode error")
	}
}
