package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

func acceleration() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("amd64 avx2=%t avx512f=%t", cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
	case "arm64":
		return fmt.Sprintf("arm64 sha2=%t", cpu.ARM64.HasSHA2)
	default:
		return runtime.GOARCH + " generic"
	}
}
