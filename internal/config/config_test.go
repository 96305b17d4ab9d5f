package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort default = %q", c.AppPort)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs default = %d", c.IdempTTLSecs)
	}
	if c.LogLevel != "info" || c.LogFormat != "text" {
		t.Fatalf("log defaults = %q/%q", c.LogLevel, c.LogFormat)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_DB", "lendwise_test")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.MySQLDB != "lendwise_test" {
		t.Fatalf("MySQLDB = %q", c.MySQLDB)
	}
	if c.IdempTTLSecs != 60 {
		t.Fatalf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
}

func TestValidate_RejectsBadPort(t *testing.T) {
	c := Load()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid MYSQL_PORT")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{
		MySQLHost: "db", MySQLPort: "3306",
		MySQLDB: "lendwise", MySQLUser: "u", MySQLPass: "p",
	}
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "u:p@tcp(db:3306)/lendwise?") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %q", dsn)
	}
}
