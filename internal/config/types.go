package config

import "time"

type ServerConfig struct {
	Addr         *string   `yaml:"addr" toml:"addr" json:"addr"`
	AllowOrigins *[]string `yaml:"allow_origins" toml:"allow_origins" json:"allow_origins"`
	Open         *bool     `yaml:"open" toml:"open" json:"open"`
}

type ClientConfig struct {
	BaseURL *string        `yaml:"base_url" toml:"base_url" json:"base_url"`
	Timeout *time.Duration `yaml:"timeout" toml:"timeout" json:"timeout"`
}

type AIConfig struct {
	APIKey  *string        `yaml:"api_key" toml:"api_key" json:"api_key"`
	BaseURL *string        `yaml:"base_url" toml:"base_url" json:"base_url"`
	Model   *string        `yaml:"model" toml:"model" json:"model"`
	Timeout *time.Duration `yaml:"timeout" toml:"timeout" json:"timeout"`
}

type UIConfig struct {
	Output     *string `yaml:"output" toml:"output" json:"output"`
	Color      *string `yaml:"color" toml:"color" json:"color"`
	Background *string `yaml:"background" toml:"background" json:"background"`
}

// Config is one layer (file, env or flags). Nil fields leave the value of
// lower layers untouched.
type Config struct {
	Server ServerConfig `yaml:"server" toml:"server" json:"server"`
	Client ClientConfig `yaml:"client" toml:"client" json:"client"`
	AI     AIConfig     `yaml:"ai" toml:"ai" json:"ai"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type ServerSettings struct {
	Addr         string
	AllowOrigins []string
	Open         bool
}

type ClientSettings struct {
	BaseURL string
	Timeout time.Duration
}

type AISettings struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type UISettings struct {
	Output     string
	Color      string
	Background string
}

type Settings struct {
	Server ServerSettings
	Client ClientSettings
	AI     AISettings
	UI     UISettings
}

func Defaults() Settings {
	return Settings{
		Server: ServerSettings{
			Addr:         ":8080",
			AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000", "*"},
		},
		Client: ClientSettings{
			BaseURL: "http://localhost:8080/api",
			Timeout: 10 * time.Second,
		},
		AI: AISettings{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-3.5-turbo",
			Timeout: 30 * time.Second,
		},
		UI: UISettings{
			Output:     "table",
			Color:      "auto",
			Background: "#FFFFFF",
		},
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
