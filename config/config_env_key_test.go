package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"reminder": map[string]any{
			"burstCount": 10,
		},
		"challenge": map[string]any{
			"matchThreshold": 0.8,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REMINDER_BURSTCOUNT", want: "reminder.burstCount"},
		{envKey: "CHALLENGE_MATCHTHRESHOLD", want: "challenge.matchThreshold"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsReferenceBurstBehavior(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Reminder.BurstCount != defaultBurstCount {
		t.Fatalf("BurstCount = %d, want %d", cfg.Reminder.BurstCount, defaultBurstCount)
	}
	if cfg.Reminder.Interval != defaultBurstInterval {
		t.Fatalf("Interval = %s, want %s", cfg.Reminder.Interval, defaultBurstInterval)
	}
	if cfg.Challenge.Window != defaultChallengeWindow {
		t.Fatalf("Window = %s, want %s", cfg.Challenge.Window, defaultChallengeWindow)
	}
	if cfg.Challenge.MatchThreshold != defaultMatchThreshold {
		t.Fatalf("MatchThreshold = %f, want %f", cfg.Challenge.MatchThreshold, defaultMatchThreshold)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Reminder.BurstCount = 3
	cfg.Challenge.PhraseWordCount = 6

	applyDefaults(cfg)

	if cfg.Reminder.BurstCount != 3 {
		t.Fatalf("BurstCount = %d, want 3", cfg.Reminder.BurstCount)
	}
	if cfg.Challenge.PhraseWordCount != 6 {
		t.Fatalf("PhraseWordCount = %d, want 6", cfg.Challenge.PhraseWordCount)
	}
}
