// /internal/config/config.go
package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	InferenceURL   string `env:"INFERENCE_API_URL" envDefault:"https://router.huggingface.co/v1/chat/completions"`
	InferenceToken string `env:"HF_TOKEN"`
	InferenceModel string `env:"INFERENCE_MODEL" envDefault:"HuggingFaceH4/zephyr-7b-beta"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	PresenceRoaster     bool    `env:"PRESENCE_ROASTER" envDefault:"true"`
	PresenceRoastChance float64 `env:"PRESENCE_ROAST_CHANCE" envDefault:"0.2"`
	MessageRoaster      bool    `env:"MESSAGE_ROASTER" envDefault:"true"`
	MessageRoastChance  float64 `env:"MESSAGE_ROAST_CHANCE" envDefault:"0.2"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("[ERR] Failed to parse config: ", err)
	}
	return cfg
}
