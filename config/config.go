package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTAccessSecret    string
	JWTRefreshSecret   string
	JWTAccessTTLHours  int
	JWTRefreshTTLHours int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers       string
	KafkaActivityTopic string

	// Seeded admin account
	AdminEmail    string
	AdminPassword string

	// Policy knobs. Both default to off, which matches the source behavior:
	// club deletion leaves child events/ideas in place, and any caller may
	// vote for the same idea repeatedly.
	ClubDeleteCascade bool
	IdeaVoteDedupe    bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(getEnv("JWT_ACCESS_TTL_HOURS", "1"))
	refreshTTL, _ := strconv.Atoi(getEnv("JWT_REFRESH_TTL_HOURS", "168"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTAccessSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:   os.Getenv("JWT_REFRESH_SECRET"),
		JWTAccessTTLHours:  accessTTL,
		JWTRefreshTTLHours: refreshTTL,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers:       os.Getenv("KAFKA_BROKERS"),
		KafkaActivityTopic: getEnv("KAFKA_ACTIVITY_TOPIC", "club-activity"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@svitclubs.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		ClubDeleteCascade: getEnv("CLUB_DELETE_CASCADE", "false") == "true",
		IdeaVoteDedupe:    getEnv("IDEA_VOTE_DEDUPE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
