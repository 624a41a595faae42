package simulator

import (
	"OSSim-go/errs"
	"OSSim-go/schedulers/types"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

type LogPrintLevel int

const (
	NoPrint        = LogPrintLevel(0)
	ShortMsgPrint  = LogPrintLevel(1)
	AllFormatPrint = LogPrintLevel(2)
)

var logPrintLevelNames = map[string]LogPrintLevel{
	"none":  NoPrint,
	"short": ShortMsgPrint,
	"all":   AllFormatPrint,
}

func ParseLogPrintLevel(s string) (LogPrintLevel, error) {
	if l, ok := logPrintLevelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return NoPrint, errs.Invalid(-1, "printLevel", s, "expected one of none, short, all")
}

type Options struct {
	logEnabled       bool
	logDirPath       string
	logLevel         slog.Level
	formatPrintLevel LogPrintLevel
	printWriter      io.Writer
	quantum          types.Duration
}

func newDefaultOptions() *Options {
	return &Options{
		logEnabled:       true,
		logDirPath:       "",
		logLevel:         slog.LevelInfo,
		formatPrintLevel: ShortMsgPrint,
		printWriter:      os.Stdout,
		quantum:          0,
	}
}

func (o *Options) Params() *types.Params {
	return &types.Params{Quantum: o.quantum}
}

type SetOption func(options *Options)

func WithOptionLogEnabled(enabled bool) SetOption {
	return func(options *Options) {
		options.logEnabled = enabled
	}
}

// WithOptionLogPath 日志写入该目录下的 ossim.log，为空时写到 stderr。
func WithOptionLogPath(logPath string) SetOption {
	return func(options *Options) {
		options.logDirPath = logPath
	}
}

func WithOptionLogLevel(level slog.Level) SetOption {
	return func(options *Options) {
		options.logLevel = level
	}
}

func WithOptionLogPrintLevel(logLevel LogPrintLevel) SetOption {
	return func(options *Options) {
		options.formatPrintLevel = logLevel
	}
}

func WithOptionPrintWriter(w io.Writer) SetOption {
	return func(options *Options) {
		options.printWriter = w
	}
}

func WithOptionQuantum(quantum types.Duration) SetOption {
	return func(options *Options) {
		options.quantum = quantum
	}
}

// Config is the file form of Options.
type Config struct {
	LogEnabled bool    `yaml:"logEnabled" json:"logEnabled"`
	LogDir     string  `yaml:"logDir" json:"logDir"`
	LogLevel   string  `yaml:"logLevel" json:"logLevel"`
	PrintLevel string  `yaml:"printLevel" json:"printLevel"`
	Quantum    float64 `yaml:"quantum" json:"quantum"`
	TraceFile  string  `yaml:"traceFile" json:"traceFile"`
	ReportDir  string  `yaml:"reportDir" json:"reportDir"`
}

func DefaultConfig() *Config {
	return &Config{
		LogEnabled: true,
		LogLevel:   "info",
		PrintLevel: "short",
	}
}

func (c *Config) Validate() error {
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	if _, err := ParseLogPrintLevel(c.PrintLevel); err != nil {
		return err
	}
	if c.Quantum < 0 || !types.IsFinite(c.Quantum) {
		return errs.Invalid(-1, "quantum", c.Quantum, "must be a finite non-negative number")
	}
	return nil
}

func (c *Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.Invalid(-1, "logLevel", c.LogLevel, "expected debug, info, warn or error")
	}
	return level, nil
}

// Options converts a validated Config into SetOptions.
func (c *Config) Options() []SetOption {
	level, _ := c.slogLevel()
	printLevel, _ := ParseLogPrintLevel(c.PrintLevel)
	return []SetOption{
		WithOptionLogEnabled(c.LogEnabled),
		WithOptionLogPath(c.LogDir),
		WithOptionLogLevel(level),
		WithOptionLogPrintLevel(printLevel),
		WithOptionQuantum(types.Duration(c.Quantum)),
	}
}

// ParseConfig overlays the YAML document on DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", URL, err)
	}
	return ParseConfig(data)
}
