// Package logger re-exports the shared logging package so call sites can
// import a single in-repo path.
package logger

import (
	pkglogger "github.com/Bparsons0904/goLogger"
)

// Re-export types
type (
	Logger = pkglogger.Logger
	Config = pkglogger.Config
	Format = pkglogger.Format
)

// Re-export constants
const (
	DefaultTraceIDKey = pkglogger.DefaultTraceIDKey
	FormatJSON        = pkglogger.FormatJSON
	FormatText        = pkglogger.FormatText
)

// Re-export functions
var (
	New                    = pkglogger.New
	NewWithConfig          = pkglogger.NewWithConfig
	ContextWithTraceID     = pkglogger.ContextWithTraceID
	ContextWithTraceIDName = pkglogger.ContextWithTraceIDName
	TraceIDFromContext     = pkglogger.TraceIDFromContext
	TraceIDFromContextName = pkglogger.TraceIDFromContextName
)
