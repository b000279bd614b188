package config

// Config holds all CLI configuration options.
type Config struct {
	Workers      int    `koanf:"workers"`
	Extension    string `koanf:"extension"`
	OutExtension string `koanf:"out_extension"`
	Verbose      bool   `koanf:"verbose"`
	Output       string `koanf:"output"`
	ErrorLog     string `koanf:"error_log"`
}

// Default configuration values.
const (
	DefaultExtension    = ".m"
	DefaultOutExtension = ".py"
	DefaultErrorLog     = "mconv-errors.log"
	DefaultOutput       = "auto" // auto-detect: TTY=styled text, non-TTY=plain
)
