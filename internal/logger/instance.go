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
// Date: 2022-05-11 13:04:16
// LastEditors: randyma
// LastEditTime: 2022-07-01 09:31:44
// FilePath: \ecx\internal\logger\instance.go
// Description: 初始化默认日志输出
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultConsoleLogger *zap.Logger
	defaultStartupLogger *zap.Logger
)

// Logger 获取运行日志与启动日志
func Logger() (*zap.Logger, *zap.Logger) {
	return ConsoleLogger(), StartupLogger()
}

// ConsoleLogger 控制台输出
func ConsoleLogger() *zap.Logger {
	if defaultConsoleLogger == nil {
		defaultConsoleLogger = NewJSONLogger(os.Stderr, zapcore.InfoLevel, JSONFormat)
	}

	return defaultConsoleLogger
}

// StartupLogger 启动日志输出
func StartupLogger() *zap.Logger {
	if defaultStartupLogger == nil {
		defaultStartupLogger = ConsoleLogger()
	}

	return defaultStartupLogger
}

// Initializer 初始化日志
func Initializer(consoleLogger, startupLogger *zap.Logger) {
	defaultConsoleLogger = consoleLogger
	defaultStartupLogger = startupLogger
}
