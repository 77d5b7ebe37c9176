package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		TelegramToken:      "123456:token",
		SummaryChatID:      42,
		SpreadsheetID:      "sheet-id",
		ExpensesSheetName:  "Expenses",
		EarningsSheetName:  "Earnings",
		ServiceAccountJSON: `{"type":"service_account"}`,
		SummaryWeekday:     "monday",
		SummaryTime:        "10:00",
		SummaryTimezone:    "Asia/Kolkata",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "missing telegram token",
			mutate:      func(c *Config) { c.TelegramToken = "" },
			wantErr:     true,
			errorString: "TELEGRAM_TOKEN is required",
		},
		{
			name:        "missing spreadsheet ID",
			mutate:      func(c *Config) { c.SpreadsheetID = "" },
			wantErr:     true,
			errorString: "SHEET_ID is required",
		},
		{
			name:        "missing chat ID",
			mutate:      func(c *Config) { c.SummaryChatID = 0 },
			wantErr:     true,
			errorString: "CHAT_ID is required for scheduled summary pushes",
		},
		{
			name: "missing credentials",
			mutate: func(c *Config) {
				c.ServiceAccountJSON = ""
				c.ServiceAccountFile = ""
				c.ApplicationCredentials = ""
			},
			wantErr:     true,
			errorString: "one of GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS is required",
		},
		{
			name:        "service account file does not exist",
			mutate:      func(c *Config) { c.ServiceAccountFile = "/nonexistent/creds.json" },
			wantErr:     true,
			errorString: "service account file does not exist: /nonexistent/creds.json",
		},
		{
			name:        "empty expenses sheet name",
			mutate:      func(c *Config) { c.ExpensesSheetName = "" },
			wantErr:     true,
			errorString: "expenses sheet name cannot be empty",
		},
		{
			name:        "invalid weekday",
			mutate:      func(c *Config) { c.SummaryWeekday = "moonday" },
			wantErr:     true,
			errorString: "invalid summary weekday 'moonday'",
		},
		{
			name:        "invalid summary time",
			mutate:      func(c *Config) { c.SummaryTime = "10am" },
			wantErr:     true,
			errorString: "invalid summary time '10am': must be HH:MM",
		},
		{
			name:        "invalid timezone",
			mutate:      func(c *Config) { c.SummaryTimezone = "Mars/Olympus" },
			wantErr:     true,
			errorString: "invalid summary timezone 'Mars/Olympus'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
			}
		})
	}
}

func TestConfig_Weekday(t *testing.T) {
	cfg := validConfig()
	cfg.SummaryWeekday = " Friday "
	d, err := cfg.Weekday()
	if err != nil || d != time.Friday {
		t.Fatalf("expected Friday, got %v (err=%v)", d, err)
	}
}

func TestConfig_CredentialsJSON(t *testing.T) {
	cfg := validConfig()
	data, err := cfg.CredentialsJSON()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(data) != cfg.ServiceAccountJSON {
		t.Fatalf("expected inline JSON to win, got %q", data)
	}

	cfg.ServiceAccountJSON = ""
	cfg.ServiceAccountFile = ""
	cfg.ApplicationCredentials = ""
	if _, err := cfg.CredentialsJSON(); err == nil {
		t.Fatal("expected error with no credential source")
	}
}
