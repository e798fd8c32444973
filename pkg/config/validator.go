package config

import "fmt"

// validator checks the resolved configuration for invalid values.
type validator struct {
	cfg  *Config
	errs []error
}

func newValidator(cfg *Config) *validator {
	return &validator{cfg: cfg}
}

func (v *validator) addError(section, field string, err error) {
	v.errs = append(v.errs, NewValidationError(section, field, err))
}

// validateAll runs every section validation and aggregates errors.
func (v *validator) validateAll() error {
	v.validateQueue()
	v.validatePipeline()
	v.validateLLM()
	v.validateStorage()
	v.validateBroker()
	v.validateRetention()

	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d error(s), first: %v", ErrValidationFailed, len(v.errs), v.errs[0])
}

func (v *validator) validateQueue() {
	q := v.cfg.Queue
	if q.WorkerCount <= 0 {
		v.addError("queue", "worker_count", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.MaxConcurrentTasks <= 0 {
		v.addError("queue", "max_concurrent_tasks", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		v.addError("queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.TaskTimeout <= 0 {
		v.addError("queue", "task_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.MergeTimeout <= 0 {
		v.addError("queue", "merge_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.SubtitleTimeout <= 0 {
		v.addError("queue", "subtitle_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		v.addError("queue", "orphan_threshold", fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
}

func (v *validator) validateRetention() {
	r := v.cfg.Retention
	if r.WorkspaceRetention <= 0 {
		v.addError("retention", "workspace_retention", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		v.addError("retention", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.BatchSize <= 0 {
		v.addError("retention", "batch_size", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
}

func (v *validator) validatePipeline() {
	p := v.cfg.Pipeline
	if p.MaxConcurrentDownloads <= 0 {
		v.addError("pipeline", "max_concurrent_downloads", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.MaxConcurrentAnalysis <= 0 {
		v.addError("pipeline", "max_concurrent_analysis", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.MaxConcurrentScripts <= 0 {
		v.addError("pipeline", "max_concurrent_scripts", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.AnalysisFailureThreshold <= 0 || p.AnalysisFailureThreshold > 1 {
		v.addError("pipeline", "analysis_failure_threshold", fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if p.KeyframeCount <= 0 {
		v.addError("pipeline", "keyframe_count", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.WorkspaceRoot == "" {
		v.addError("pipeline", "workspace_root", ErrMissingRequiredField)
	}
}

func (v *validator) validateLLM() {
	for name, p := range map[string]*LLMProviderConfig{
		"vision": v.cfg.LLM.Vision,
		"script": v.cfg.LLM.Script,
	} {
		if p == nil {
			v.addError("llm", name, ErrMissingRequiredField)
			continue
		}
		if p.BaseURL == "" {
			v.addError("llm", name+".base_url", ErrMissingRequiredField)
		}
		if p.Model == "" {
			v.addError("llm", name+".model", ErrMissingRequiredField)
		}
		if p.MaxTokens <= 0 {
			v.addError("llm", name+".max_tokens", fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
}

func (v *validator) validateStorage() {
	s := v.cfg.Storage
	if s.Endpoint == "" {
		v.addError("storage", "endpoint", ErrMissingRequiredField)
	}
	if s.Bucket == "" {
		v.addError("storage", "bucket", ErrMissingRequiredField)
	}
}

func (v *validator) validateBroker() {
	b := v.cfg.Broker
	if b.RedisAddr == "" {
		v.addError("broker", "redis_addr", ErrMissingRequiredField)
	}
	if b.PipelineQueue == "" {
		v.addError("broker", "pipeline_queue", ErrMissingRequiredField)
	}
	if b.MaintenanceQueue == "" {
		v.addError("broker", "maintenance_queue", ErrMissingRequiredField)
	}
}
