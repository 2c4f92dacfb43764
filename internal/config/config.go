package config

import "github.com/spf13/viper"

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Backend struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"backend"`

	Storage struct {
		Path string
	} `mapstructure:"storage"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads the config file at path, if given, with KONZOLA_* environment
// variables and built-in defaults filling the gaps.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KONZOLA")
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("backend.base_url", "http://localhost:5000")
	v.SetDefault("storage.path", "konzola.sqlite3")

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
