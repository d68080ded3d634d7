//go:build windows
// +build windows

package cores

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signal 处理系统信号, ctx 结束时返回.
// windows 下没有 USR1/USR2.
func Signal(ctx context.Context, handle func(SignalCommand)) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(c)

	for {
		select {
		case sig := <-c:
			switch sig {
			case syscall.SIGINT:
				handle(SignalINT)

			case syscall.SIGTERM:
				handle(SignalTERM)

			case syscall.SIGHUP:
				handle(SignalHUP)
			}

		case <-ctx.Done():
			return
		}
	}
}
