package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"tridraw/game"
)

// Config collects every tunable the service consumes from the environment.
type Config struct {
	Host string
	Port string

	MaxRounds         int
	SessionTimeout    time.Duration
	EndedGraceWindow  time.Duration
	InactivityCeiling time.Duration

	LedgerRetention time.Duration
	AuditRetention  time.Duration

	TimeoutSweepInterval time.Duration
	CleanupSweepInterval time.Duration

	Rewards game.RewardTable

	WalletURL    string
	WalletAPIKey string
}

// Load reads the environment. Missing or malformed values fall back to
// defaults with a warning; config problems should not take the service down.
func Load() Config {
	return Config{
		Host: getEnv("HOST", "127.0.0.1"),
		Port: getEnv("PORT", "3000"),

		MaxRounds:         getEnvInt("MAX_ROUNDS", 3),
		SessionTimeout:    getEnvDuration("SESSION_TIMEOUT", time.Minute),
		EndedGraceWindow:  getEnvDuration("ENDED_GRACE_WINDOW", 30*time.Second),
		InactivityCeiling: getEnvDuration("INACTIVITY_CEILING", time.Hour),

		LedgerRetention: getEnvDuration("LEDGER_RETENTION", 72*time.Hour),
		AuditRetention:  getEnvDuration("AUDIT_RETENTION", 7*24*time.Hour),

		TimeoutSweepInterval: getEnvDuration("TIMEOUT_SWEEP_INTERVAL", 30*time.Second),
		CleanupSweepInterval: getEnvDuration("CLEANUP_SWEEP_INTERVAL", 10*time.Minute),

		Rewards: loadRewardTable(),

		WalletURL:    getEnv("WALLET_URL", "http://127.0.0.1:4000"),
		WalletAPIKey: os.Getenv("WALLET_API_KEY"),
	}
}

func loadRewardTable() game.RewardTable {
	table := game.DefaultRewardTable()
	overrides := map[game.Combination]string{
		game.CombinationLuckyTriple:   "REWARD_LUCKY_TRIPLE",
		game.CombinationStraightFlush: "REWARD_STRAIGHT_FLUSH",
		game.CombinationTriple:        "REWARD_TRIPLE",
		game.CombinationStraight:      "REWARD_STRAIGHT",
		game.CombinationFlush:         "REWARD_FLUSH",
	}
	for combo, key := range overrides {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || val < 0 {
			log.Printf("⚠️  Invalid value for %s: %s", key, raw)
			continue
		}
		table[combo] = val
	}
	return table
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Printf("⚠️  Invalid value for %s: %s", key, raw)
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		log.Printf("⚠️  Invalid value for %s: %s", key, raw)
		return fallback
	}
	return val
}
