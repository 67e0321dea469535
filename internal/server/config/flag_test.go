package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"server",
		"-a", ":6000",
		"-d", "postgres://localhost/auth",
		"-o", "5",
		"-t", "60",
		"-w", "30",
		"-f", "noreply@x.com",
		"-g", "eu-west-1",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":6000", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://localhost/auth", c.DatabaseDSN)
	assert.Equal(t, 5*time.Minute, c.OtpTTL)
	assert.Equal(t, 60*time.Minute, c.SessionTTL)
	assert.Equal(t, 30*time.Second, c.SweepInterval)
	assert.Equal(t, "noreply@x.com", c.EmailSender)
	assert.Equal(t, "eu-west-1", c.EmailRegion)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"server"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 10*time.Minute, c.OtpTTL)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"server", "-a", ":6000", "-zz", "junk"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":6000", c.EndpointAddrGRPC)
}
