package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/ascii-cube/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = parameter.MaxLogSize
)

// setupLogging routes the standard logger to logs/ascii-cube.log when debug is set
// and discards it otherwise; the terminal belongs to the screen, so logs never go to stdout or stderr
// An oversized log is renamed with a timestamp before a fresh one is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("ascii-cube-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started, pid %d", os.Getpid())
	return f
}
