package config

import (
	"flag"
	"os"
	"time"

	"github.com/ndmitriev/gatekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-o int      reset-code validity, minutes
//	-t int      session validity, minutes
//	-w int      reaper sweep interval, seconds
//	-f string   From address for reset-code mail (empty = mock delivery)
//	-g string   SES region
//	-u string   AWS access key (empty = default credential chain)
//	-p string   AWS secret key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-t", "-w", "-f", "-g", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	otpTTL := fs.Int("o", int(config.OtpTTL.Minutes()), "otp_ttl (in minutes)")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session_ttl (in minutes)")
	sweepInterval := fs.Int("w", int(config.SweepInterval.Seconds()), "sweep_interval (in seconds)")

	fs.StringVar(&config.EmailSender, "f", config.EmailSender, "reset mail From address")
	fs.StringVar(&config.EmailRegion, "g", config.EmailRegion, "SES region")
	fs.StringVar(&config.EmailAccessKey, "u", config.EmailAccessKey, "AWS access key")
	fs.StringVar(&config.EmailSecretKey, "p", config.EmailSecretKey, "AWS secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.OtpTTL = time.Duration(*otpTTL) * time.Minute
	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.SweepInterval = time.Duration(*sweepInterval) * time.Second
}
