package backend

import "context"

// StatusInfo describes whether the configured endpoint is serving and which
// models it exposes. Installing or starting the model service itself is a
// process-lifecycle concern that lives outside this package.
type StatusInfo struct {
	Running     bool     `json:"running"`
	Endpoint    string   `json:"endpoint"`
	Protocol    Protocol `json:"protocol"`
	Models      []string `json:"models"`
	ActiveModel string   `json:"active_model,omitempty"`
}

// Status probes the endpoint by listing its models. The service counts as
// running only when the probe succeeds and reports at least one model, which
// matches how the chat UI has always interpreted "ready".
func Status(ctx context.Context, cfg Config) StatusInfo {
	adapter := New(cfg)
	info := StatusInfo{
		Endpoint: cfg.withDefaults().Endpoint,
		Protocol: adapter.Protocol(),
		Models:   []string{},
	}

	names, err := adapter.ListModels(ctx)
	if err != nil || len(names) == 0 {
		return info
	}
	info.Running = true
	info.Models = names
	info.ActiveModel = names[0]
	return info
}
