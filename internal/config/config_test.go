package config

import "testing"

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Embedding: EmbeddingConfig{
			Model:      "text-embedding-3-large",
			Dimensions: 3072,
		},
		Completion: CompletionConfig{Model: "o3-mini"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MissingDimensions(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.Dimensions = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding dimensions")
	}
}

func TestValidate_KNearestBelowTopK(t *testing.T) {
	cfg := validConfig()
	cfg.Search.TopK = 15
	cfg.Search.KNearest = 10
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when k_nearest is below top_k")
	}
}

func TestApplyDefaults_SearchBudget(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Search.TopK != 15 {
		t.Errorf("expected default top_k=15, got %d", cfg.Search.TopK)
	}
	if cfg.Search.KNearest != 30 {
		t.Errorf("expected default k_nearest=30, got %d", cfg.Search.KNearest)
	}
	if cfg.Completion.MaxTokens != 1000 {
		t.Errorf("expected default max_tokens=1000, got %d", cfg.Completion.MaxTokens)
	}
	if cfg.Storage.KeyPrefix != "lexdex:" {
		t.Errorf("expected default key prefix, got %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LEXDEX_TEST_KEY", "secret")

	out := expandEnvVars([]byte("api_key: ${LEXDEX_TEST_KEY}\nurl: ${LEXDEX_TEST_URL:-http://localhost}"))
	want := "api_key: secret\nurl: http://localhost"
	if string(out) != want {
		t.Errorf("expandEnvVars = %q, want %q", out, want)
	}
}
