package config

import (
	"log"
	"os"
	"path/filepath"
)

// DebugLog is nil unless debug logging is enabled. Call sites must
// nil-check before use.
var DebugLog *log.Logger

// InitDebugLog opens the debug log file in the config directory.
// Safe to call when debug is disabled; DebugLog stays nil.
func InitDebugLog(cfg *Config) {
	if !cfg.Debug {
		return
	}

	if err := EnsureDir(GetConfigDir()); err != nil {
		return
	}

	logPath := filepath.Join(GetConfigDir(), "debug.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started ===")
}
