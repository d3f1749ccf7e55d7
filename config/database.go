package config

import "fmt"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Database 数据库配置. Driver selects between a MySQL server and a hosted
// Postgres instance.
type Database struct {
	Driver       string `json:"driver" yaml:"driver"`
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	Database     string `json:"database" yaml:"database"`
	SSLMode      string `json:"sslmode" yaml:"sslmode"`
	MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	MaxLifetime  int    `json:"max_lifetime" yaml:"max_lifetime"` // seconds
	// Dsn overrides every other connection field when set.
	DsnOverride string `json:"dsn" yaml:"dsn"`
}

func (d *Database) DriverName() string {
	if d.Driver == "" {
		return DriverPostgres
	}
	return d.Driver
}

func (d *Database) Dsn() string {
	if d.DsnOverride != "" {
		return d.DsnOverride
	}

	switch d.DriverName() {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	default:
		sslmode := d.SSLMode
		if sslmode == "" {
			sslmode = "require"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslmode)
	}
}
