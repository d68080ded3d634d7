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

package ecx

import (
	"fmt"
	"io"
)

// reporter 演示脚本的编号输出.
// 只写入调用方给定的流, 与 zap 日志分离, 日志走 stderr.
type reporter struct {
	w io.Writer
}

func (r reporter) title(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "=== "+format+" ===\n", args...)
}

func (r reporter) line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "    "+format+"\n", args...)
}

func (r reporter) step(n int, format string, args ...interface{}) {
	fmt.Fprintf(r.w, " %d. "+format+"\n", append([]interface{}{n}, args...)...)
}

func (r reporter) blank() {
	fmt.Fprintln(r.w)
}
