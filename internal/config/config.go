package config

import (
	"os"
	"strconv"

	"clicker_backend/internal/game"
	"clicker_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	BotToken    string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string
	LogJSON  bool

	// API rate limits (requests per window)
	APIRateLimit      int
	APIRateWindowSec  int
	AuthRateLimit     int
	AuthRateWindowSec int
	SyncRateLimit     int
	SyncRateWindowSec int

	Game game.Config
}

// Load reads configuration from env (.env is honored for local runs).
// Fails fast on anything the server cannot run without.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" && os.Getenv("DEV_MODE") != "true" {
		logger.Fatal("BOT_TOKEN is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		BotToken:    botToken,
		JWTSecret:   jwtSecret,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		LogLevel: envStr("LOG_LEVEL", "info"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",

		APIRateLimit:      envInt("API_RATE_LIMIT", 60),
		APIRateWindowSec:  envInt("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:     envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindowSec: envInt("AUTH_RATE_WINDOW_SECONDS", 60),
		SyncRateLimit:     envInt("SYNC_RATE_LIMIT", 120),
		SyncRateWindowSec: envInt("SYNC_RATE_WINDOW_SECONDS", 60),

		Game: loadGameConfig(),
	}
}

// loadGameConfig starts from the production defaults and applies per-tunable
// env overrides, so staging can run alternate curves without a rebuild.
func loadGameConfig() game.Config {
	g := game.DefaultConfig()

	g.MultitapPriceMultiplier = envFloat("MULTITAP_PRICE_MULTIPLIER", g.MultitapPriceMultiplier)
	g.EnergyLimitPriceMultiplier = envFloat("ENERGY_LIMIT_PRICE_MULTIPLIER", g.EnergyLimitPriceMultiplier)
	g.MultitapBaseIncrement = envFloat("MULTITAP_BASE_INCREMENT", g.MultitapBaseIncrement)
	g.MultitapIncrementMultiplier = envFloat("MULTITAP_INCREMENT_MULTIPLIER", g.MultitapIncrementMultiplier)
	g.EnergyLimitBaseIncrement = envFloat("ENERGY_LIMIT_BASE_INCREMENT", g.EnergyLimitBaseIncrement)
	g.EnergyLimitIncrementMultiplier = envFloat("ENERGY_LIMIT_INCREMENT_MULTIPLIER", g.EnergyLimitIncrementMultiplier)
	g.DefaultEnergyLimit = envFloat("DEFAULT_ENERGY_LIMIT", g.DefaultEnergyLimit)
	g.EnergyRefillIntervalMs = int64(envInt("ENERGY_REFILL_INTERVAL_MS", int(g.EnergyRefillIntervalMs)))
	g.MaxEnergyRefillsPerDay = envInt("MAX_ENERGY_REFILLS_PER_DAY", g.MaxEnergyRefillsPerDay)
	g.SyncTolerance = envFloat("SYNC_TOLERANCE", g.SyncTolerance)

	return g
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
