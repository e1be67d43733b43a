// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceConfig describes one collector adapter.
// Type is one of "rss", "api" or "html".
type SourceConfig struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// CSS selectors, html sources only
	CardSelector     string `yaml:"card_selector"`
	TitleSelector    string `yaml:"title_selector"`
	CompanySelector  string `yaml:"company_selector"`
	LocationSelector string `yaml:"location_selector"`
	LinkSelector     string `yaml:"link_selector"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"-" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// ApplyConfig controls the form-filling run.
// Strategy picks how form fields are located: "name", "placeholder" or "css".
type ApplyConfig struct {
	Headless       bool              `yaml:"headless"`
	Strategy       string            `yaml:"strategy"`
	Selectors      map[string]string `yaml:"selectors"`
	SubmitSelector string            `yaml:"submit_selector"`
}

type Config struct {
	ProfilePath string `yaml:"profile_path"`
	OutputDir   string `yaml:"output_dir"`
	CachePath   string `yaml:"cache_path"`
	CookiesPath string `yaml:"cookies_path"`
	MaxResults  int    `yaml:"max_results"`
	RenderPDF   bool   `yaml:"render_pdf"`

	Sources []SourceConfig `yaml:"sources"`
	SMTP    SMTPConfig     `yaml:"smtp"`
	Apply   ApplyConfig    `yaml:"apply"`

	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// applyEnv lets env vars override the YAML values, so credentials
// stay out of the config file.
func (cfg *Config) applyEnv() {
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Fatalf("Invalid SMTP_PORT: %v", err)
		}
		cfg.SMTP.Port = p
	}
	if user := os.Getenv("SMTP_USERNAME"); user != "" {
		cfg.SMTP.Username = user
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = "config/user_profile.json"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 3
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Apply.Strategy == "" {
		cfg.Apply.Strategy = "name"
	}
	if cfg.Apply.SubmitSelector == "" {
		cfg.Apply.SubmitSelector = "button[type=submit]"
	}
}

// ValidateSMTP checks the fields the mailer cannot run without.
func (cfg *Config) ValidateSMTP() error {
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if cfg.SMTP.From == "" {
		return fmt.Errorf("smtp from address is required")
	}
	if cfg.SMTP.To == "" {
		return fmt.Errorf("smtp to address is required")
	}
	return nil
}
