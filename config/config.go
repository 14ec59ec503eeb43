package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	MongoDBConfig MongoDBConfig
	JWTSecret     string
	ImgBBConfig   ImgBBConfig
	TracingConfig TracingConfig
	StoreContact  StoreContact
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type ImgBBConfig struct {
	APIKey   string
	Endpoint string
}

type TracingConfig struct {
	CollectorHost string
}

// StoreContact is the public contact record rendered on the storefront.
type StoreContact struct {
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Address   string `json:"address"`
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		ImgBBConfig: ImgBBConfig{
			APIKey:   os.Getenv("IMGBB_API_KEY"),
			Endpoint: os.Getenv("IMGBB_ENDPOINT"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		StoreContact: StoreContact{
			WhatsApp:  os.Getenv("STORE_WHATSAPP"),
			Instagram: os.Getenv("STORE_INSTAGRAM"),
			Address:   os.Getenv("STORE_ADDRESS"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "storefront"
	}

	if conf.ImgBBConfig.Endpoint == "" {
		conf.ImgBBConfig.Endpoint = "https://api.imgbb.com/1/upload"
	}

	return &conf
}
