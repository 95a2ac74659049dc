package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "pipeline.yaml", "pipeline config file")
	flags.String("log-file", "log/seriesta.log", "log file used in production")
}

// OutputFlags defines the flags of commands that print tables
func OutputFlags(flags *pflag.FlagSet) {
	flags.Int("tail", 5, "number of trailing rows to print, 0 prints every row")
	flags.Int("precision", 2, "decimal places of printed values")
	flags.Bool("color", false, "print with color")
}
