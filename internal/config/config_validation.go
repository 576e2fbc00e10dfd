package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server relies on at startup. Mail settings are not required
// here: a missing SMTP credential is reported per-request by the send-mail
// endpoint.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Files.UploadDir == "" || cfg.Storage.Files.MaxUploadBytes <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Data.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.Path == "" {
		return ErrInvalidCacheConfigs
	}

	if cfg.Probe.Timeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
