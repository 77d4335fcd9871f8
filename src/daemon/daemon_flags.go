// Package daemon holds the command line flags and the signals which control
// the lifetime of the artrepo process.
package daemon

import (
	"flag"
	"io"
)

// Flags are the command line arguments of the artrepo binary.
type Flags struct {
	// Debug logs at debug level to stderr regardless of the log_file setting.
	Debug bool

	// ConfigPath is the configuration file. Empty means the default one.
	ConfigPath string

	// PidFile is where the process ID is written. Empty means nowhere.
	PidFile string

	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// ParseFlags parses `args`, without the program name, into Flags.
func ParseFlags(args []string, output io.Writer) (Flags, error) {
	var f Flags

	fs := flag.NewFlagSet("artrepo", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&f.Debug, "D", false, "Debug mode. Logs everything to stderr.")
	fs.StringVar(&f.ConfigPath, "config", "", "Configuration file. Default is $HOME/.artrepo/config.json")
	fs.StringVar(&f.PidFile, "p", "", "Pidfile. Use it to write the process ID in a file.")
	fs.BoolVar(&f.ShowVersion, "v", false, "Show version and build information.")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	return f, nil
}
