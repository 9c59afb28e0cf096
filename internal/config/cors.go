package config

import "strings"

type CORSConfig struct {
	Origin  string
	Methods []string
	Headers []string
}

func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		Origin:  getEnv("CORS_ORIGIN", "*"),
		Methods: getEnvAsList("CORS_METHODS", []string{"GET", "POST"}),
		Headers: getEnvAsList("CORS_HEADERS", []string{"Content-Type", "Authorization"}),
	}
}

func (c CORSConfig) AllowMethods() string {
	return strings.Join(c.Methods, ",")
}

func (c CORSConfig) AllowHeaders() string {
	return strings.Join(c.Headers, ",")
}
