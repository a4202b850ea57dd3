// Package cmd declares the kong command tree for stm32gen.
package cmd

// CLI is the root command structure parsed by kong. Values may come from
// flags, environment variables or layered JSON/YAML/TOML configuration
// files; flags win.
type CLI struct {
	Log struct {
		Level string `help:"Log level (trace, debug, info, warn, error)." default:"info" enum:"trace,debug,info,warn,error" env:"STM32GEN_LOG_LEVEL"`
		File  string `help:"Write logs to this file instead of the console." env:"STM32GEN_LOG_FILE"`
	} `embed:"" prefix:"log."`

	Config string `help:"Path to a configuration file." env:"STM32GEN_CONFIG"`

	Generate  Generate      `cmd:"" help:"Generate register API crates from SVD device descriptions."`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers."`
}
