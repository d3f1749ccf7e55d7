package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Database  *Database  `json:"database" yaml:"database"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Loyalty   *Loyalty   `json:"loyalty" yaml:"loyalty"`
	Bitrefill *Bitrefill `json:"bitrefill" yaml:"bitrefill"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads a yaml config file and panics if it cannot be used.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes yaml content and fills in defaults for missing sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.Database == nil {
		conf.Database = &Database{}
	}
	if conf.Redis == nil {
		conf.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Jwt.ExpiresIn == 0 {
		conf.Jwt.ExpiresIn = 24 * 3600
	}
	if conf.Loyalty == nil {
		conf.Loyalty = &Loyalty{}
	}
	conf.Loyalty.withDefaults()
	if conf.Bitrefill == nil {
		conf.Bitrefill = &Bitrefill{}
	}
	conf.Bitrefill.withDefaults()

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
