package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ndmitriev/gatekeeper/internal/flagx"
	"github.com/ndmitriev/gatekeeper/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. Duration fields use timex.Duration, which accepts both string values
// such as "10m" and integer nanoseconds. After unmarshalling, the fields are
// copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	OtpTTL           timex.Duration `json:"otp_ttl"`
	SessionTTL       timex.Duration `json:"session_ttl"`
	SweepInterval    timex.Duration `json:"sweep_interval"`
	EmailSender      string         `json:"email_sender"`
	EmailRegion      string         `json:"email_region"`
	EmailAccessKey   string         `json:"email_access_key"`
	EmailSecretKey   string         `json:"email_secret_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.OtpTTL = time.Duration(c.OtpTTL.Duration)
	config.SessionTTL = time.Duration(c.SessionTTL.Duration)
	config.SweepInterval = time.Duration(c.SweepInterval.Duration)
	config.EmailSender = c.EmailSender
	config.EmailRegion = c.EmailRegion
	config.EmailAccessKey = c.EmailAccessKey
	config.EmailSecretKey = c.EmailSecretKey
}
