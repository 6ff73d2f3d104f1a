package settings

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var Settings *AppSettings

func NewSettings() *AppSettings {
	settings := AppSettings{
		SessionExpires: sessionExpiresFromEnv(),
		Domain:         getEnvOrDefault("ANSWERHUB_DOMAIN", "localhost"),
		Port:           getEnvOrDefault("ANSWERHUB_PORT", ":8080"),
		SQLiteDatabase: getEnvOrDefault("ANSWERHUB_DB_PATH", "file:.///db.sqlite"),
	}
	if !strings.HasPrefix(settings.Port, ":") {
		settings.Port = ":" + settings.Port
	}
	return &settings
}

func sessionExpiresFromEnv() time.Duration {
	hours, err := strconv.ParseInt(getEnvOrDefault("ANSWERHUB_SESSION_HOURS", "8"), 10, 64)
	if err != nil || hours <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

func getEnvOrDefault(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

type AppSettings struct {
	SQLiteDatabase string
	Domain         string
	Port           string
	SessionExpires time.Duration
}

func (as *AppSettings) BaseURL() string {
	if as.Domain == "localhost" {
		return fmt.Sprintf("http://%s%s", as.Domain, as.Port)
	} else {
		return fmt.Sprintf("https://%s", as.Domain)
	}
}

func (as *AppSettings) SQLiteDbString(readonly bool) string {
	params := make(url.Values)
	params.Add("_journal_mode", "WAL")
	params.Add("_busy_timeout", "5000")
	params.Add("_synchronous", "NORMAL")
	params.Add("_cache_size", "-20000")
	params.Add("_foreign_keys", "ON")
	if readonly {
		params.Add("mode", "ro")
	} else {
		params.Add("_txlock", "IMMEDIATE")
		params.Add("mode", "rwc")
	}

	return as.SQLiteDatabase + "?" + params.Encode()
}

func ReadDotenv(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Println("no .env file loaded:", err)
	}
}
