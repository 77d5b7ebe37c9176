package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Telegram
	TelegramToken string
	SummaryChatID int64

	// Google Sheets
	SpreadsheetID          string
	ExpensesSheetName      string
	EarningsSheetName      string
	ServiceAccountJSON     string
	ServiceAccountFile     string
	ApplicationCredentials string

	// Weekly summary schedule
	SummaryWeekday  string
	SummaryTime     string
	SummaryTimezone string
}

func Load() *Config {
	return &Config{
		TelegramToken: getEnv("TELEGRAM_TOKEN", ""),
		SummaryChatID: getEnvInt64("CHAT_ID", 0),

		SpreadsheetID:          getEnv("SHEET_ID", ""),
		ExpensesSheetName:      getEnv("EXPENSES_SHEET_NAME", "Expenses"),
		EarningsSheetName:      getEnv("EARNINGS_SHEET_NAME", "Earnings"),
		ServiceAccountJSON:     getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountFile:     getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		ApplicationCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		SummaryWeekday:  getEnv("SUMMARY_WEEKDAY", "monday"),
		SummaryTime:     getEnv("SUMMARY_TIME", "10:00"),
		SummaryTimezone: getEnv("SUMMARY_TIMEZONE", "Asia/Kolkata"),
	}
}

// Validate validates the configuration and returns an error if invalid.
// A failed validation is fatal at startup; nothing degrades gracefully here.
func (c *Config) Validate() error {
	var errors []string

	if c.TelegramToken == "" {
		errors = append(errors, "TELEGRAM_TOKEN is required")
	}
	if c.SpreadsheetID == "" {
		errors = append(errors, "SHEET_ID is required")
	}
	if c.SummaryChatID == 0 {
		errors = append(errors, "CHAT_ID is required for scheduled summary pushes")
	}

	if c.ServiceAccountJSON == "" && c.ServiceAccountFile == "" && c.ApplicationCredentials == "" {
		errors = append(errors, "one of GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS is required")
	}
	if c.ServiceAccountFile != "" {
		if _, err := os.Stat(c.ServiceAccountFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("service account file does not exist: %s", c.ServiceAccountFile))
		}
	}

	if c.ExpensesSheetName == "" {
		errors = append(errors, "expenses sheet name cannot be empty")
	}
	if c.EarningsSheetName == "" {
		errors = append(errors, "earnings sheet name cannot be empty")
	}

	if _, err := c.Weekday(); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := time.Parse("15:04", c.SummaryTime); err != nil {
		errors = append(errors, fmt.Sprintf("invalid summary time '%s': must be HH:MM", c.SummaryTime))
	}
	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid summary timezone '%s': %v", c.SummaryTimezone, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Weekday resolves SUMMARY_WEEKDAY to a time.Weekday.
func (c *Config) Weekday() (time.Weekday, error) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if d, ok := weekdays[strings.ToLower(strings.TrimSpace(c.SummaryWeekday))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("invalid summary weekday '%s'", c.SummaryWeekday)
}

// Location resolves SUMMARY_TIMEZONE.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.SummaryTimezone)
}

// CredentialsJSON resolves the service account credentials, preferring
// inline JSON over a file path. GOOGLE_APPLICATION_CREDENTIALS is the
// standard Google Cloud fallback.
func (c *Config) CredentialsJSON() ([]byte, error) {
	if c.ServiceAccountJSON != "" {
		return []byte(c.ServiceAccountJSON), nil
	}
	path := c.ServiceAccountFile
	if path == "" {
		path = c.ApplicationCredentials
	}
	if path == "" {
		return nil, fmt.Errorf("missing service account credentials")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return data, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
