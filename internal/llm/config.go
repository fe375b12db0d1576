package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskAdvisory answers a free-form operator question about the workbench.
	TaskAdvisory TaskType = "advisory"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvisory: {Temperature: 0.3, MaxTokens: 1024},
		},
	}
}

// Settings is the subset of runtime configuration the advisory client reads.
type Settings struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
}

// ConfigFromSettings overlays resolved settings on the defaults. Zero or
// negative numeric settings keep the default.
func ConfigFromSettings(s Settings) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = s.Enabled
	cfg.LogCalls = s.LogCalls
	if s.Endpoint != "" {
		cfg.Endpoint = s.Endpoint
	}
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.TimeoutMs > 0 {
		cfg.TimeoutMs = s.TimeoutMs
	}
	if s.MaxRetries >= 0 {
		cfg.MaxRetries = s.MaxRetries
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
