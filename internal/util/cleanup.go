package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func SetupInterruptHandler(novelDir string) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\nInterrupt received. Cleaning up...")

		RemovePartialFiles(novelDir)
		RemoveIfEmpty(novelDir)

		os.Exit(1)
	}()
}

func RemoveIfEmpty(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	if len(entries) == 0 {
		_ = os.Remove(dir)
	}
}
