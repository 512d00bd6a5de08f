package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digestkit/sha1sum/batch"
	"github.com/digestkit/sha1sum/errors"
	"github.com/digestkit/sha1sum/hashutil"
	"github.com/digestkit/sha1sum/logging"
)

var flagHashStrings bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]) + " [inputs...]",
	Short: `Compute SHA-1 digests of files, strings or standard input`,
	Run:   runHash,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.CPrint(logging.FATAL, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
	}
	if failedInputs > 0 {
		os.Exit(1)
	}
}

// failedInputs counts inputs that could not be hashed or verified.
// Failures never stop the remaining inputs; they only turn the exit
// status nonzero.
var failedInputs int

func runHash(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		d, err := hashutil.SumReader(os.Stdin)
		if err != nil {
			logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIReadInput],
				logging.LogFormat{"input": "stdin", "err": err})
			failedInputs++
			return
		}
		fmt.Printf("%s  -\n", d)
		return
	}

	inputs := make([]batch.Input, 0, len(args))
	for _, arg := range args {
		if flagHashStrings {
			inputs = append(inputs, batch.Input{Name: arg, Literal: []byte(arg)})
		} else {
			inputs = append(inputs, batch.Input{Name: arg, Path: arg})
		}
	}

	hasher, err := batch.NewHasher(config.Hash.Workers)
	if err != nil {
		logging.CPrint(logging.FATAL, "fail to create hasher pool",
			logging.LogFormat{"err": err, "workers": config.Hash.Workers})
	}
	defer hasher.Close()

	for _, r := range hasher.Run(inputs) {
		if r.Err != nil {
			logging.CPrint(logging.ERROR, errors.ErrCode[errors.ErrCLIHashInput],
				logging.LogFormat{"input": r.Name, "err": r.Err})
			failedInputs++
			continue
		}
		fmt.Printf("%s  %s\n", r.Digest, r.Name)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sha1sum.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", defaultWorkers, "number of concurrent hashing workers")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))

	RootCmd.Flags().BoolVarP(&flagHashStrings, "string", "s", false, "hash the arguments themselves instead of files")

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(versionCmd)
}
