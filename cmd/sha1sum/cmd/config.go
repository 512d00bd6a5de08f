package cmd

import (
	"github.com/spf13/viper"

	cfgpkg "github.com/digestkit/sha1sum/config"
	"github.com/digestkit/sha1sum/logging"
)

const (
	defaultLogDir   = "sha1sum-logs"
	defaultLogLevel = cfgpkg.DefaultLogLevel
	defaultWorkers  = 4
)

var (
	flagLogDir      string
	flagLogLevel    string
	flagWorkers     int
	cfgFile         string
	usingConfigFile bool
	config          = cfgpkg.DefaultConfig()
)

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".sha1sum")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	// Load config to memory.
	config.Log.LogDir = viper.GetString("log_dir")
	if config.Log.LogDir == "" {
		config.Log.LogDir = defaultLogDir
	}
	config.Log.LogLevel = viper.GetString("log_level")
	if config.Log.LogLevel == "" {
		config.Log.LogLevel = defaultLogLevel
	}
	config.Hash.Workers = viper.GetInt("workers")

	if err := cfgpkg.CheckConfig(config); err != nil {
		logging.CPrint(logging.FATAL, "invalid configuration", logging.LogFormat{"err": err})
	}
}

// initLogger initializes logging module by config.
func initLogger() {
	logging.Init(config.Log.LogDir, cfgpkg.DefaultLoggingFilename, config.Log.LogLevel, 1, config.Log.DisableCPrint)
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.INFO, "using config file", logging.LogFormat{"file": usingConfigFile})
}
