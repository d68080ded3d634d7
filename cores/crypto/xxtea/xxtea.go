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
// Date: 2022-05-31 23:47:02
// LastEditors: randyma
// LastEditTime: 2022-06-30 16:22:40
// Description: XXTEA 块加密

// Package xxtea Corrected Block TEA.
// 密钥固定 128 位, 不足右侧补零; 明文长度编码进密文, 解密自动还原.
package xxtea

import "encoding/base64"

const delta = 0x9e3779b9

func mx(sum, y, z, p, e uint32, k []uint32) uint32 {
	return ((z>>5 ^ y<<2) + (y>>3 ^ z<<4)) ^ ((sum ^ y) + (k[p&3^e] ^ z))
}

// Encrypt 加密数据
func Encrypt(data, key []byte) []byte {
	if len(data) == 0 {
		return data
	}
	return toBytes(encrypt(toUint32s(data, true), fixKey(key)), false)
}

// Decrypt 解密数据, 数据损坏时返回 nil
func Decrypt(data, key []byte) []byte {
	if len(data) == 0 {
		return data
	}
	return toBytes(decrypt(toUint32s(data, false), fixKey(key)), true)
}

// EncryptStdToURLString 加密并输出URL安全的base64文本
func EncryptStdToURLString(str, key string) string {
	return base64.URLEncoding.EncodeToString(Encrypt([]byte(str), []byte(key)))
}

// DecryptURLToStdString 解析URL安全base64文本并解密
func DecryptURLToStdString(str, key string) (string, error) {
	data, err := base64.URLEncoding.DecodeString(str)
	if err != nil {
		return "", err
	}
	return string(Decrypt(data, []byte(key))), nil
}

func encrypt(v, k []uint32) []uint32 {
	n := uint32(len(v) - 1)
	if n < 1 {
		return v
	}

	var y, z, sum, e, p uint32
	z = v[n]
	for q := 6 + 52/(n+1); q > 0; q-- {
		sum += delta
		e = sum >> 2 & 3
		for p = 0; p < n; p++ {
			y = v[p+1]
			v[p] += mx(sum, y, z, p, e, k)
			z = v[p]
		}
		y = v[0]
		v[n] += mx(sum, y, z, p, e, k)
		z = v[n]
	}
	return v
}

func decrypt(v, k []uint32) []uint32 {
	n := uint32(len(v) - 1)
	if n < 1 {
		return v
	}

	var y, z, e, p uint32
	y = v[0]
	for sum := (6 + 52/(n+1)) * delta; sum != 0; sum -= delta {
		e = sum >> 2 & 3
		for p = n; p > 0; p-- {
			z = v[p-1]
			v[p] -= mx(sum, y, z, p, e, k)
			y = v[p]
		}
		z = v[n]
		v[0] -= mx(sum, y, z, 0, e, k)
		y = v[0]
	}
	return v
}

// fixKey 密钥补齐或截断到16字节
func fixKey(key []byte) []uint32 {
	if len(key) < 16 {
		fixed := make([]byte, 16)
		copy(fixed, key)
		key = fixed
	}
	return toUint32s(key[:16], false)
}

func toUint32s(b []byte, includeLength bool) []uint32 {
	length := uint32(len(b))
	n := length >> 2
	if length&3 != 0 {
		n++
	}

	var v []uint32
	if includeLength {
		v = make([]uint32, n+1)
		v[n] = length
	} else {
		v = make([]uint32, n)
	}

	for i := uint32(0); i < length; i++ {
		v[i>>2] |= uint32(b[i]) << ((i & 3) << 3)
	}
	return v
}

func toBytes(v []uint32, includeLength bool) []byte {
	length := uint32(len(v)) << 2
	if includeLength {
		m := v[len(v)-1]
		if m < length-7 || m > length-4 {
			return nil
		}
		length = m
	}

	b := make([]byte, length)
	for i := uint32(0); i < length; i++ {
		b[i] = byte(v[i>>2] >> ((i & 3) << 3))
	}
	return b
}
