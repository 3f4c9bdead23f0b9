package telegram

import (
	"sync"

	"tgkit/pkg/logger"
)

// WarningCategory classifies library warnings
type WarningCategory string

const (
	// CategoryDeprecation marks warnings about renamed or removed Bot API surface
	CategoryDeprecation WarningCategory = "deprecation"
)

// WarnFunc receives a warning message, its category and a stack-depth hint
// pointing at the frame that triggered the warning (1 = the immediate caller
// of the warning helper).
type WarnFunc func(message string, category WarningCategory, stackDepth int)

// LogWarnFunc is the default process-wide warning sink. It writes the warning
// through the global logger at Warn level, honoring the stack-depth hint so
// the reported caller is the code that passed the deprecated argument.
func LogWarnFunc(message string, category WarningCategory, stackDepth int) {
	logger.Get().WithCallerSkip(stackDepth).Warnw(message, "category", string(category))
}

var (
	warnMu   sync.RWMutex
	warnFunc WarnFunc = LogWarnFunc
)

// SetWarnFunc replaces the process-wide warning sink and returns the previous
// one. Passing nil restores LogWarnFunc. Safe for concurrent use.
func SetWarnFunc(fn WarnFunc) WarnFunc {
	if fn == nil {
		fn = LogWarnFunc
	}
	warnMu.Lock()
	prev := warnFunc
	warnFunc = fn
	warnMu.Unlock()
	return prev
}

func defaultWarn(message string, category WarningCategory, stackDepth int) {
	warnMu.RLock()
	fn := warnFunc
	warnMu.RUnlock()
	fn(message, category, stackDepth)
}

// CapturedWarning is one warning observed by a WarningRecorder
type CapturedWarning struct {
	Message    string
	Category   WarningCategory
	StackDepth int
}

// WarningRecorder collects warnings instead of logging them. Intended for
// tests; safe for concurrent use.
type WarningRecorder struct {
	mu       sync.Mutex
	warnings []CapturedWarning
}

// Warn implements WarnFunc
func (r *WarningRecorder) Warn(message string, category WarningCategory, stackDepth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, CapturedWarning{
		Message:    message,
		Category:   category,
		StackDepth: stackDepth,
	})
}

// Warnings returns a copy of all captured warnings
func (r *WarningRecorder) Warnings() []CapturedWarning {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CapturedWarning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// Count returns the number of captured warnings
func (r *WarningRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.warnings)
}

// Reset discards all captured warnings
func (r *WarningRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = nil
}
