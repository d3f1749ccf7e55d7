package config

import "time"

type Bitrefill struct {
	BaseURL  string        `json:"base_url" yaml:"base_url"`
	ApiKey   string        `json:"api_key" yaml:"api_key"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

func (b *Bitrefill) withDefaults() {
	if b.BaseURL == "" {
		b.BaseURL = "https://api.bitrefill.com/v2"
	}
	if b.Timeout == 0 {
		b.Timeout = 10 * time.Second
	}
	if b.CacheTTL == 0 {
		b.CacheTTL = 10 * time.Minute
	}
}

func ProvideBitrefillConfig(cfg *Config) *Bitrefill {
	return cfg.Bitrefill
}
