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

package metrics

import (
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// zapReporter 将 tally 上报桥接到 zap 日志
type zapReporter struct {
	log *zap.Logger
}

func newZapReporter(log *zap.Logger) tally.StatsReporter {
	return &zapReporter{log: log}
}

func (r *zapReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.log.Info("metric counter",
		zap.String("name", name),
		zap.Int64("value", value),
		zap.Any("tags", tags),
	)
}

func (r *zapReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.log.Info("metric gauge",
		zap.String("name", name),
		zap.Float64("value", value),
		zap.Any("tags", tags),
	)
}

func (r *zapReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.log.Info("metric timer",
		zap.String("name", name),
		zap.Duration("interval", interval),
		zap.Any("tags", tags),
	)
}

func (r *zapReporter) ReportHistogramValueSamples(name string, tags map[string]string, buckets tally.Buckets, bucketLowerBound, bucketUpperBound float64, samples int64) {
	r.log.Debug("metric histogram",
		zap.String("name", name),
		zap.Float64("lower", bucketLowerBound),
		zap.Float64("upper", bucketUpperBound),
		zap.Int64("samples", samples),
	)
}

func (r *zapReporter) ReportHistogramDurationSamples(name string, tags map[string]string, buckets tally.Buckets, bucketLowerBound, bucketUpperBound time.Duration, samples int64) {
	r.log.Debug("metric histogram",
		zap.String("name", name),
		zap.Duration("lower", bucketLowerBound),
		zap.Duration("upper", bucketUpperBound),
		zap.Int64("samples", samples),
	)
}

func (r *zapReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *zapReporter) Flush() {}

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }
