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
// Date: 2022-05-12 09:58:12
// LastEditors: randyma
// LastEditTime: 2022-07-01 11:08:26
// Description: Ecx 配置定义

package ecx

import (
	"os"

	"github.com/doublemo/ecx/cores/crypto/ec"
	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/doublemo/ecx/internal/logger"
	"github.com/doublemo/ecx/internal/metrics"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Configuration 配置
type Configuration struct {
	SourceFile string                `yaml:"-" json:"config" usage:"配置文件地址"`
	Name       string                `yaml:"name" json:"name" usage:"运行实例名称"`
	Seed       int64                 `yaml:"seed" json:"seed" usage:"随机种子, 0 表示从系统熵获取"`
	Random     bool                  `yaml:"random" json:"random" usage:"随机生成曲线与基点, 忽略 curve 中除 p 外的字段"`
	Extension  bool                  `yaml:"extension" json:"extension" usage:"在二次扩域 F_p² 上执行交换"`
	Curve      ec.Params             `yaml:"curve" json:"curve" usage:"曲线参数"`
	ScalarA    uint64                `yaml:"scalar_a" json:"scalar_a" usage:"甲方固定私钥, 0 表示随机"`
	ScalarB    uint64                `yaml:"scalar_b" json:"scalar_b" usage:"乙方固定私钥, 0 表示随机"`
	Message    string                `yaml:"message" json:"message" usage:"会话密钥演示所加密的消息"`
	OrderBound uint64                `yaml:"order_bound" json:"order_bound" usage:"基点阶暴力搜索的步数上限"`
	Baseline   bool                  `yaml:"baseline" json:"baseline" usage:"附带一轮经典 Diffie-Hellman 对照"`
	Logger     logger.Configuration  `yaml:"log" json:"log" usage:"日志配置"`
	Metrics    metrics.Configuration `yaml:"metrics" json:"metrics" usage:"指标配置"`
}

// NewConfiguration 默认配置
func NewConfiguration() *Configuration {
	return &Configuration{
		Name:       "ecx",
		Curve:      ec.Default(),
		Message:    "hello, elliptic curves! 你好, 椭圆曲线!",
		OrderBound: 1000000,
		Logger:     logger.NewConfiguration(),
		Metrics:    metrics.NewConfiguration(),
	}
}

// Parse 从配置文件装载, 文件不存在或格式错误时报错
func (c *Configuration) Parse(fp string) error {
	if fp == "" {
		return nil
	}

	data, err := os.ReadFile(fp)
	if err != nil {
		return errors.Wrap(err, "read configuration file")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "parse configuration file")
	}

	c.SourceFile = fp
	return nil
}

// Check 检查配置
func (c *Configuration) Check() error {
	if c.Random {
		// 随机模式只用到素数 p, 其余曲线字段由运行时生成
		if _, err := field.New(c.Curve.P); err != nil {
			return err
		}
	} else {
		if err := c.Curve.Check(); err != nil {
			return err
		}
	}

	if c.OrderBound == 0 {
		return errors.New("order_bound must be greater than 0")
	}

	if !c.Random && c.Curve.N > 0 {
		if c.ScalarA >= c.Curve.N {
			return errors.Errorf("scalar_a must be below the base point order %d", c.Curve.N)
		}
		if c.ScalarB >= c.Curve.N {
			return errors.Errorf("scalar_b must be below the base point order %d", c.Curve.N)
		}
	}

	if err := c.Logger.Check(); err != nil {
		return err
	}

	return c.Metrics.Check()
}
