package clickhouse

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyemlee/quicklink-app/internal/config"
)

func TestConnOptions(t *testing.T) {
	cfg := &config.ClickHouse{
		Host:            "clickhouse",
		Port:            "9440",
		Database:        "quicklink",
		User:            "analytics",
		Password:        "secret",
		UseTLS:          true,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 3600,
	}

	opts := connOptions(cfg)

	assert.Equal(t, []string{"clickhouse:9440"}, opts.Addr)
	assert.Equal(t, "quicklink", opts.Auth.Database)
	assert.Equal(t, "analytics", opts.Auth.Username)
	assert.Equal(t, time.Hour, opts.ConnMaxLifetime)
	require.NotNil(t, opts.TLS)
	assert.Equal(t, uint16(tls.VersionTLS12), opts.TLS.MinVersion)
}

func TestConnOptions_PlainText(t *testing.T) {
	opts := connOptions(&config.ClickHouse{Host: "localhost", Port: "9000"})

	assert.Equal(t, []string{"localhost:9000"}, opts.Addr)
	assert.Nil(t, opts.TLS)
}
