package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Generation GenerationConfig `yaml:"generation"`
	Credits    CreditsConfig    `yaml:"credits"`
	Plans      []PlanConfig     `yaml:"plans"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// GenerationConfig holds the settings for the script generation engine.
// The model key itself comes from the GEMINI_API_KEY environment variable.
type GenerationConfig struct {
	GeminiModel string `yaml:"gemini_model"`

	// IncludeStrategicAnalysis controls whether generated scripts carry a
	// per-script strategic analysis field. The source product shipped two
	// variants of the schema; this reconciles them as a single option.
	IncludeStrategicAnalysis bool `yaml:"include_strategic_analysis"`
}

// CreditsConfig defines the credit grants that are not tied to a purchase.
type CreditsConfig struct {
	SignupGrant    int `yaml:"signup_grant"`
	FreeDailyLimit int `yaml:"free_daily_limit"`
}

// PlanConfig is a single subscription tier as shown on the pricing view.
type PlanConfig struct {
	Name         string   `yaml:"name"`
	PriceINR     int      `yaml:"price_inr"`
	CreditReward int      `yaml:"credit_reward"`
	MaxScripts   int      `yaml:"max_scripts"`
	Header       string   `yaml:"header"`
	Features     []string `yaml:"features"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// PlanByName returns the plan config for the given tier name, or false when
// the tier is not part of the catalog.
func (c AppConfig) PlanByName(name string) (PlanConfig, bool) {
	for _, p := range c.Plans {
		if p.Name == name {
			return p, true
		}
	}
	return PlanConfig{}, false
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
