package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flowbox",
	Short: "flowbox computes CSS block layout for HTML documents",
	Long: `flowbox styles an HTML document with CSS, builds the box tree and
lays out block boxes in normal flow. The resulting boxes may be printed
as a tree, dumped as JSON or written as a GraphViz DOT graph.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		return setupTracing(viper.GetString("trace"))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./flowbox.yaml)")
	flags.IntP("width", "w", 800, "viewport width in px")
	flags.String("trace", "Error", "trace level [Debug|Info|Error]")
	flags.Bool("useragent", true, "prepend the user-agent stylesheet")
	flags.StringP("format", "f", "tree", "output format [tree|json|dot]")
	flags.StringArray("css", nil, "additional author stylesheet (may be repeated)")
	//
	viper.SetDefault("viewport.width", 800)
	viper.SetDefault("trace", "Error")
	viper.SetDefault("useragent", true)
	viper.SetDefault("format", "tree")
	_ = viper.BindPFlag("viewport.width", flags.Lookup("width"))
	_ = viper.BindPFlag("trace", flags.Lookup("trace"))
	_ = viper.BindPFlag("useragent", flags.Lookup("useragent"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("css", flags.Lookup("css"))
	//
	rootCmd.AddCommand(layoutCmd, styleCmd, queryCmd, replCmd)
}

// initializeConfig reads in a config file and environment variables, if set.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("flowbox")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("FLOWBOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return core.WrapError(err, core.EINVALID, "error reading config file")
		}
	}
	return nil
}

// settings are the configuration values for a single run.
type settings struct {
	width     dimen.Dimen
	useragent bool
	format    string
	css       []string
}

func currentSettings() (settings, error) {
	s := settings{
		width:     dimen.Dimen(viper.GetFloat64("viewport.width")),
		useragent: viper.GetBool("useragent"),
		format:    strings.ToLower(viper.GetString("format")),
		css:       viper.GetStringSlice("css"),
	}
	if s.width <= 0 {
		return s, usageError("viewport width must be positive, is %v", s.width)
	}
	switch s.format {
	case "tree", "json", "dot":
	default:
		return s, usageError("unknown output format %q", s.format)
	}
	return s, nil
}
