package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel int    `toml:"log_level"`

	Database     DatabaseConfigs     `toml:"database"`
	ApiServer    APIServerConfigs    `toml:"api_server"`
	Notification NotificationConfigs `toml:"notification"`
	Auth         AuthConfigs         `toml:"auth"`
	Redis        RedisConfigs        `toml:"redis"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	MaxLimit     int `toml:"max_limit"`
	DefaultLimit int `toml:"default_limit"`
}

type NotificationConfigs struct {
	ProxyServer ServerConfigs `toml:"proxy_server"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Expiration Duration `toml:"expiration"`
}

// Duration decodes TOML strings like "15m" or "720h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}
