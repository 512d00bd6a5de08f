package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
)

const (
	DefaultConfigFilename  = "sha1sum.json"
	DefaultLoggingFilename = "sha1sum"
	DefaultLogLevel        = "info"
	defaultLogDirname      = "sha1sum-logs"
	defaultWorkers         = 4
	// MaxWorkers bounds the hashing pool so a bad config cannot spawn
	// an unbounded number of goroutines.
	MaxWorkers = 256
)

type Config struct {
	Log  *Log  `json:"log"`
	Hash *Hash `json:"hash"`
}

type Log struct {
	LogDir        string `json:"log_dir"`
	LogLevel      string `json:"log_level"`
	DisableCPrint bool   `json:"disable_cprint"`
}

type Hash struct {
	Workers int `json:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:  DefaultLog(),
		Hash: DefaultHash(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:        defaultLogDirname,
		LogLevel:      DefaultLogLevel,
		DisableCPrint: false,
	}
}

func DefaultHash() *Hash {
	return &Hash{
		Workers: defaultWorkers,
	}
}

func LoadConfig(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}

	if cfg.Hash == nil {
		cfg.Hash = DefaultHash()
	}

	if cfg.Log.LogDir == "" {
		cfg.Log.LogDir = defaultLogDirname
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = DefaultLogLevel
	}

	if cfg.Hash.Workers <= 0 {
		cfg.Hash.Workers = defaultWorkers
	}
	if cfg.Hash.Workers > MaxWorkers {
		return errors.New(fmt.Sprintln("hash workers cannot be more than", MaxWorkers, "current", cfg.Hash.Workers))
	}

	return nil
}
