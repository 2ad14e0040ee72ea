package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverRedis, "":
		if cfg.Storage.Redis.Addr == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
