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
// Date: 2022-05-11 18:01:10
// LastEditors: randyma
// LastEditTime: 2022-07-01 10:17:23
// FilePath: \ecx\internal\metrics\metrics.go
// Description: 运行指标收集

package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/doublemo/ecx/cores/crypto/field"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Configuration 指标配置
type Configuration struct {
	ReportingFreqSec int    `yaml:"reporting_freq_sec" json:"reporting_freq_sec" usage:"Frequency of metrics exports. Default is 60 seconds."`
	Prefix           string `yaml:"prefix" json:"prefix" usage:"Prefix for metric names. Default is 'ecx', empty string '' disables the prefix."`
}

// NewConfiguration 默认指标配置
func NewConfiguration() Configuration {
	return Configuration{
		ReportingFreqSec: 60,
		Prefix:           "ecx",
	}
}

// Check 检查配置文件
func (c Configuration) Check() error {
	if c.ReportingFreqSec < 0 {
		return errors.New("metrics reporting frequency must not be negative")
	}
	return nil
}

// snapshotter 根作用域的快照能力, tally 未在 Scope 接口上公开
type snapshotter interface {
	Snapshot() tally.Snapshot
}

// Metrics 运行指标, 通过 tally 汇总并定期经 zap 输出
type Metrics struct {
	scope  tally.Scope
	closer io.Closer
	log    *zap.Logger

	keygens    tally.Counter
	exchanges  tally.Counter
	matches    tally.Counter
	mismatches tally.Counter
	latency    tally.Timer
	order      tally.Gauge
	fieldOps   tally.Scope
}

// New 创建指标收集器
func New(log *zap.Logger, c Configuration) *Metrics {
	freq := c.ReportingFreqSec
	if freq == 0 {
		freq = 60
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   c.Prefix,
		Reporter: newZapReporter(log),
	}, time.Duration(freq)*time.Second)

	return &Metrics{
		scope:      scope,
		closer:     closer,
		log:        log,
		keygens:    scope.Counter("keygen_count"),
		exchanges:  scope.Counter("exchange_count"),
		matches:    scope.Counter("secret_match_count"),
		mismatches: scope.Counter("secret_mismatch_count"),
		latency:    scope.Timer("exchange_latency"),
		order:      scope.Gauge("subgroup_order"),
		fieldOps:   scope.SubScope("field"),
	}
}

// CountKeygen 密钥对生成次数
func (m *Metrics) CountKeygen(n int64) {
	m.keygens.Inc(n)
}

// CountExchange 完成的交换次数
func (m *Metrics) CountExchange(n int64) {
	m.exchanges.Inc(n)
}

// CountMatch 共享点一致
func (m *Metrics) CountMatch() {
	m.matches.Inc(1)
}

// CountMismatch 共享点不一致
func (m *Metrics) CountMismatch() {
	m.mismatches.Inc(1)
}

// RecordLatency 单次演示耗时
func (m *Metrics) RecordLatency(d time.Duration) {
	m.latency.Record(d)
}

// SetSubgroupOrder 基点阶
func (m *Metrics) SetSubgroupOrder(n uint64) {
	m.order.Update(float64(n))
}

// FieldOps 按类别累计域运算次数
func (m *Metrics) FieldOps(s field.Stats) {
	m.fieldOps.Counter("adds").Inc(int64(s.Adds))
	m.fieldOps.Counter("subs").Inc(int64(s.Subs))
	m.fieldOps.Counter("muls").Inc(int64(s.Muls))
	m.fieldOps.Counter("invs").Inc(int64(s.Invs))
	m.fieldOps.Counter("pows").Inc(int64(s.Pows))
	m.fieldOps.Counter("sqrts").Inc(int64(s.Sqrts))
}

// Close 输出终值快照并停止上报.
// 演示通常远短于上报周期, 不在退出时补一次快照计数就全丢了.
func (m *Metrics) Close() error {
	if sc, ok := m.scope.(snapshotter); ok {
		snap := sc.Snapshot()
		for _, c := range snap.Counters() {
			m.log.Info("metric counter", zap.String("name", c.Name()), zap.Int64("value", c.Value()))
		}
		for _, g := range snap.Gauges() {
			m.log.Info("metric gauge", zap.String("name", g.Name()), zap.Float64("value", g.Value()))
		}
		for _, t := range snap.Timers() {
			m.log.Info("metric timer", zap.String("name", t.Name()), zap.Durations("values", t.Values()))
		}
	}

	return m.closer.Close()
}
