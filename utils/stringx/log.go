// File: log.go
// Title: Package Logger
// Description: Holds the logger used by stringx for buffer relocation and
//              rejected input diagnostics. Entries are discarded by default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"sync"

	mdwlog "github.com/msto63/xlstr/core/log"
)

var (
	pkgLogger   = mdwlog.Discard()
	pkgLoggerMu sync.RWMutex
)

// SetLogger sets the logger used by the package. A nil logger restores the
// default, which discards every entry.
func SetLogger(logger *mdwlog.Logger) {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = logger.WithName("stringx")
}

func logger() *mdwlog.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	return pkgLogger
}

// reject logs a rejected degenerate input and returns err
func reject(err error) error {
	logger().WarnWithErr("input rejected", err)
	return err
}
