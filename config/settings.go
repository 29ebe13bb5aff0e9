package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Settings is the immutable runtime configuration. It is built once at
// startup from the environment and passed to the components that need
// it; nothing reads os.Getenv after LoadSettings returns.
type Settings struct {
	Port           string
	GinMode        string
	AllowedOrigins []string

	DBDSN  string
	DBName string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	LongStayEnabled bool
	LongStayNights  int
	LongStayRate    float64

	SeedOnStart bool
}

func LoadSettings() (Settings, error) {
	dsn, dbName, err := resolveMySQLDSN()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Port:           envOrDefault("PORT", "8080"),
		GinMode:        envOrDefault("GIN_MODE", ""),
		AllowedOrigins: splitCSV(envOrDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		DBDSN:  dsn,
		DBName: dbName,

		JWTSecret:  envOrDefault("JWT_SECRET", "change-me-in-production"),
		JWTTTL:     envDuration("JWT_TTL", 30*time.Minute),
		BcryptCost: envInt("BCRYPT_COST", bcrypt.DefaultCost),

		LongStayEnabled: envBool("LONG_STAY_DISCOUNT_ENABLED", true),
		LongStayNights:  envInt("LONG_STAY_THRESHOLD_NIGHTS", 7),
		LongStayRate:    envFloat("LONG_STAY_DISCOUNT_RATE", 0.10),

		SeedOnStart: envBool("SEED_ON_START", true),
	}
	return s, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "stayhub_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}
