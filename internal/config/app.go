package config

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Name:    getEnv("APP_NAME", "CV Analysis API"),
		Env:     getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "3000"),
		Version: getEnv("APP_VERSION", "1.0.0"),
	}
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address for the configured port.
func (c AppConfig) Addr() string {
	return ":" + c.Port
}
