package config

import (
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so tests start clean.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STRAVA_ACCESS_TOKEN", "REDIS_URL", "STRAVA_BASE_URL", "STRAVA_PER_PAGE",
		"STRAVA_MAX_PAGES", "HTTP_TIMEOUT", "TARGET_DISTANCES", "REPORT_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %q", err)
	}
	if cfg.StravaBaseURL != "https://www.strava.com" {
		t.Errorf("expected default base URL, got %q", cfg.StravaBaseURL)
	}
	if cfg.PerPage != 200 {
		t.Errorf("expected default per page 200, got %d", cfg.PerPage)
	}
	if cfg.MaxPages != 1000 {
		t.Errorf("expected default max pages 1000, got %d", cfg.MaxPages)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.HTTPTimeout)
	}
	if len(cfg.TargetDistances) != 2 || cfg.TargetDistances[0] != 5 || cfg.TargetDistances[1] != 10 {
		t.Errorf("expected default targets [5 10], got %v", cfg.TargetDistances)
	}
	if cfg.ReportPath != "stravastats.html" {
		t.Errorf("expected default report path, got %q", cfg.ReportPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRAVA_ACCESS_TOKEN", "tok")
	t.Setenv("STRAVA_BASE_URL", "http://127.0.0.1:8181")
	t.Setenv("STRAVA_PER_PAGE", "30")
	t.Setenv("STRAVA_MAX_PAGES", "5")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("TARGET_DISTANCES", "5, 21.1")
	t.Setenv("REPORT_PATH", "/tmp/report.html")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %q", err)
	}
	if cfg.AccessToken != "tok" {
		t.Errorf("expected token to be read, got %q", cfg.AccessToken)
	}
	if cfg.StravaBaseURL != "http://127.0.0.1:8181" {
		t.Errorf("unexpected base URL %q", cfg.StravaBaseURL)
	}
	if cfg.PerPage != 30 || cfg.MaxPages != 5 {
		t.Errorf("unexpected paging config: %d/%d", cfg.PerPage, cfg.MaxPages)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("unexpected timeout %s", cfg.HTTPTimeout)
	}
	if len(cfg.TargetDistances) != 2 || cfg.TargetDistances[1] != 21.1 {
		t.Errorf("unexpected targets %v", cfg.TargetDistances)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"per page too large", "STRAVA_PER_PAGE", "500"},
		{"per page zero", "STRAVA_PER_PAGE", "0"},
		{"per page not a number", "STRAVA_PER_PAGE", "many"},
		{"max pages zero", "STRAVA_MAX_PAGES", "0"},
		{"timeout unparseable", "HTTP_TIMEOUT", "30"},
		{"timeout negative", "HTTP_TIMEOUT", "-1s"},
		{"distances unparseable", "TARGET_DISTANCES", "5,ten"},
		{"distances negative", "TARGET_DISTANCES", "-5"},
		{"distances empty", "TARGET_DISTANCES", ","},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q, got nil", tc.key, tc.value)
			}
		})
	}
}
