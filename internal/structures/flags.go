package structures

type CliFlags struct {
	ConfigPath string
	EnvPath    string
	DebugMode  bool
}

// ClientConfig configures the command-line client. It never carries the
// provider credential.
type ClientConfig struct {
	ServerURL string `yaml:"serverURL" validate:"required|fullUrl"`
	DataDir   string `yaml:"dataDir" validate:"required"`
	Compress  bool   `yaml:"compress"`
	LogLevel  string `yaml:"logLevel" validate:"required|in:debug,info,warn,error"`
}
