package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads configurations from a TOML file. Secrets can be overridden
// with environment variables so the file can be committed without them.
func Load(path string) (Configs, error) {
	var cfg Configs
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	if secret := os.Getenv("AUTH_TOKEN_SECRET"); secret != "" {
		cfg.Auth.TokenSecret = secret
	}

	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Configs) {
	if cfg.ApiServer.MaxLimit == 0 {
		cfg.ApiServer.MaxLimit = 50
	}

	if cfg.ApiServer.DefaultLimit == 0 {
		cfg.ApiServer.DefaultLimit = 20
	}

	if cfg.Auth.AccessToken.Name == "" {
		cfg.Auth.AccessToken.Name = "access_token"
	}
}
