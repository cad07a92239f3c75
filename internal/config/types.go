package config

type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	DatabaseURL        string
	JWTSecret          string
	SessionSecret      string
	ClientAddress      string
	BaseURL            string
	Environment        string
}
