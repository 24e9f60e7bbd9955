// Package log provides structured logging for textkit infrastructure.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON and text output. Text
//              operations never log; the pattern cache and the message
//              catalog accept a *Logger and default to Discard().
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-11
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger.WithName("patternx").Debug("compiled pattern", log.String("expr", `\s+`))
package log
