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
// Author: randyma 435420057@qq.com
// Date: 2022-05-09 09:53:57
// LastEditors: randyma 435420057@qq.com
// LastEditTime: 2022-07-01 11:36:02
// FilePath: \ecx\kits\ecx\args.go
// Description:
package ecx

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ParseArgs 参数解析
func ParseArgs(log *zap.Logger, v, commitid, buildAt string) *Configuration {
	var (
		// showVersion 显示版本信息
		showVersion bool

		// showHelp 显示配置信息
		showHelp bool
	)

	config := NewConfiguration()
	fs := flag.NewFlagSet("ecx", flag.ExitOnError)
	fs.Usage = usage
	fs.BoolVar(&showVersion, "version", false, "Print version information")
	fs.BoolVar(&showVersion, "v", false, "Print version information")
	fs.BoolVar(&showHelp, "h", false, "Show help message.")
	fs.BoolVar(&showHelp, "help", false, "Show help message.")
	bindFlags(fs, config)
	fs.Parse(os.Args[1:])
	if showHelp {
		usage()
	}

	if showVersion {
		fmt.Printf("%s + %s + %s\n", v, commitid, buildAt)
		os.Exit(0)
	}

	if config.SourceFile != "" {
		fp := config.SourceFile
		if err := config.Parse(fp); err != nil {
			log.Fatal("Failed to load configuration file", zap.String("file", fp), zap.Error(err))
		}

		// 命令行参数优先于配置文件, 配置装载后重新覆盖一次
		fs = flag.NewFlagSet("ecx", flag.ExitOnError)
		fs.Usage = usage
		fs.BoolVar(&showVersion, "version", false, "Print version information")
		fs.BoolVar(&showVersion, "v", false, "Print version information")
		fs.BoolVar(&showHelp, "h", false, "Show help message.")
		fs.BoolVar(&showHelp, "help", false, "Show help message.")
		bindFlags(fs, config)
		fs.Parse(os.Args[1:])
	}

	return config
}

func bindFlags(fs *flag.FlagSet, config *Configuration) {
	fs.StringVar(&config.SourceFile, "c", config.SourceFile, "Configuration file")
	fs.StringVar(&config.SourceFile, "config", config.SourceFile, "Configuration file")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "Deterministic random seed")
	fs.BoolVar(&config.Random, "random", config.Random, "Generate a random curve and base point")
	fs.BoolVar(&config.Extension, "ext", config.Extension, "Run the exchange over the quadratic extension field")
	fs.Uint64Var(&config.Curve.P, "p", config.Curve.P, "Field prime")
	fs.Uint64Var(&config.ScalarA, "da", config.ScalarA, "Fixed private scalar for the first party")
	fs.Uint64Var(&config.ScalarB, "db", config.ScalarB, "Fixed private scalar for the second party")
	fs.StringVar(&config.Message, "m", config.Message, "Message for the session key demo")
	fs.BoolVar(&config.Baseline, "dh", config.Baseline, "Also run a classic Diffie-Hellman round")
}

var usageStr = `
Usage: ecx [options]
    -c, --config                     Configuration file
    -p <prime>                       Field prime, must satisfy p = 3 (mod 4)
    -seed <n>                        Deterministic random seed
    -random                          Generate a random curve and base point
    -ext                             Run over the quadratic extension field
    -da <scalar>                     Fixed private scalar for the first party
    -db <scalar>                     Fixed private scalar for the second party
    -m <message>                     Message for the session key demo
    -dh                              Also run a classic Diffie-Hellman round
    -h, --help                       Show help message
    -v, --version                    Show version
`

func usage() {
	fmt.Printf("%s\n", usageStr)
	os.Exit(0)
}
