package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/ttpr0/go-transit/graph"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file " + file)
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	ApplyEnvOverrides(&config)
	if err := ValidateConfig(config); err != nil {
		return config, err
	}
	return config, nil
}

func DefaultConfig() Config {
	return Config{
		Source: SourceOptions{
			Type: JSON_SOURCE,
		},
		RoutingSettings: graph.RoutingSettings{
			BusWaitTime: 6,
			BusVelocity: 40,
		},
		Server: ServerOptions{
			Port:           5002,
			AllowedOrigins: []string{"*"},
		},
		LogLevel: INFO,
	}
}

// TRANSIT_PORT replaces the configured server port.
func ApplyEnvOverrides(config *Config) {
	value := os.Getenv("TRANSIT_PORT")
	if value == "" {
		return
	}
	port, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn(fmt.Sprintf("ignoring invalid TRANSIT_PORT %q", value))
		return
	}
	config.Server.Port = port
}

func ValidateConfig(config Config) error {
	v := validator.New()
	if err := v.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type Config struct {
	Source          SourceOptions         `yaml:"source"`
	RoutingSettings graph.RoutingSettings `yaml:"routing-settings"`
	Server          ServerOptions         `yaml:"server"`
	LogLevel        LogLevel              `yaml:"log-level"`
}

type SourceOptions struct {
	Type SourceType `yaml:"type"`
	Path string     `yaml:"path" validate:"required"`
	// optional stops.txt loaded before the main source
	StopsCSV string `yaml:"stops-csv"`
}

type ServerOptions struct {
	Port           int      `yaml:"port" validate:"gte=1,lte=65535"`
	AllowedOrigins []string `yaml:"allowed-origins"`
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	JSON_SOURCE SourceType = 0
	TEXT_SOURCE SourceType = 1
	OSM_SOURCE  SourceType = 2
	CSV_SOURCE  SourceType = 3
)

func (self SourceType) String() string {
	switch self {
	case JSON_SOURCE:
		return "json"
	case TEXT_SOURCE:
		return "text"
	case OSM_SOURCE:
		return "osm"
	case CSV_SOURCE:
		return "csv"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "json":
		return JSON_SOURCE, nil
	case "text":
		return TEXT_SOURCE, nil
	case "osm":
		return OSM_SOURCE, nil
	case "csv":
		return CSV_SOURCE, nil
	default:
		return JSON_SOURCE, errors.New("unknown source type")
	}
}

type LogLevel byte

const (
	DEBUG LogLevel = 0
	INFO  LogLevel = 1
	WARN  LogLevel = 2
	ERROR LogLevel = 3
)

func (self LogLevel) String() string {
	switch self {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		panic("unknown log level")
	}
}
func (self LogLevel) SlogLevel() slog.Level {
	switch self {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
func (self LogLevel) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	level, err := LogLevelFromString(value.Value)
	if err != nil {
		return err
	}
	*self = level
	return nil
}

func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, errors.New("unknown log level")
	}
}
