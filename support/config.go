package support

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/weegigs/webtemp/sensor"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// Config is everything the server needs at startup.
type Config struct {
	Host          string
	Port          int
	File          string
	Layout        string
	Strict        bool
	LogLevel      string
	Trace         string
	TraceEndpoint string
}

func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		File:     sensor.DefaultPath,
		Layout:   string(sensor.Detailed),
		LogLevel: "info",
		Trace:    TraceNone,
	}
}

// FromEnvironment overlays WEBTEMP_* variables. lookup is usually os.LookupEnv.
func (c Config) FromEnvironment(lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup("WEBTEMP_FILE"); ok {
		c.File = v
	}
	if v, ok := lookup("WEBTEMP_LAYOUT"); ok {
		c.Layout = v
	}
	if v, ok := lookup("WEBTEMP_STRICT"); ok {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrap(err, "WEBTEMP_STRICT is not a boolean")
		}
		c.Strict = strict
	}
	if v, ok := lookup("WEBTEMP_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("WEBTEMP_TRACE"); ok {
		c.Trace = v
	}
	if v, ok := lookup("WEBTEMP_TRACE_ENDPOINT"); ok {
		c.TraceEndpoint = v
	}

	return c, nil
}

// WithArguments applies the optional positional bind host and port.
func (c Config) WithArguments(args []string) (Config, error) {
	if len(args) > 2 {
		return c, errors.Errorf("expected at most 2 arguments, got %d", len(args))
	}
	if len(args) > 0 {
		c.Host = args[0]
	}
	if len(args) > 1 {
		port, err := strconv.Atoi(args[1])
		if err != nil {
			return c, errors.Wrapf(err, "invalid port %q", args[1])
		}
		c.Port = port
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	if _, err := sensor.ParseLayout(c.Layout); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	switch c.Trace {
	case TraceNone, TraceConsole, TraceJaeger:
	case TraceOTLP:
		if c.TraceEndpoint == "" {
			return errors.New("otlp tracing requires a trace endpoint")
		}
	default:
		return errors.Errorf("unknown trace exporter %q", c.Trace)
	}

	return nil
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) SensorPath() sensor.Path {
	return sensor.Path(c.File)
}

func (c Config) ParsePolicy() sensor.ParsePolicy {
	if c.Strict {
		return sensor.Strict
	}
	return sensor.Lenient
}

// SensorLayout assumes the config has been validated.
func (c Config) SensorLayout() sensor.Layout {
	layout, err := sensor.ParseLayout(c.Layout)
	if err != nil {
		return sensor.Detailed
	}
	return layout
}
