package llm

import (
	"github.com/alexanderramin/raiden/internal/logger"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to the structured logger.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an Observer that logs events through log.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: logger.OrNop(log)}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	kv := []any{
		"task", event.Task,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"attempts", event.Attempts,
	}
	if event.Success {
		o.log.Info("llm_call", kv...)
		return
	}
	o.log.Warn("llm_call failed", append(kv, "error_code", event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
