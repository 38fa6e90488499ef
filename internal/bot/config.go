package bot

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Bot struct {
		Token         string  `toml:"token"`
		DigestChatIDs []int64 `toml:"digest_chat_ids"`
		DigestTime    string  `toml:"digest_time"`
	} `toml:"bot"`
	Database struct {
		DSN string `toml:"dsn"`
	} `toml:"database"`
	Display struct {
		DateFormat string `toml:"date_format"`
	} `toml:"display"`
}

func ReadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is not specified in config")
	}
	if cfg.Bot.DigestTime == "" {
		cfg.Bot.DigestTime = "08:00"
	}
	if cfg.Display.DateFormat == "" {
		cfg.Display.DateFormat = "Mon, Jan 2"
	}

	return &cfg, nil
}
