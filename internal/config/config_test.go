package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:                       "development",
		StorageURI:                "gs://cloud-samples-data/speech/brooklyn_bridge.raw",
		LanguageCode:              "en-US",
		SampleRateHertz:           44100,
		AudioEncoding:             "auto",
		OutputStorage:             "gs://my-output-bucket",
		MaxChars:                  40,
		RecognizeTimeout:          time.Hour,
		GoogleCloudProjectID:      "project-id",
		GoogleCloudSpeechLocation: "global",
		GoogleCloudSpeechModel:    "long",
	}
}

func TestValidateForJob_Valid(t *testing.T) {
	if err := validConfig().ValidateForJob(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_InvalidSampleRate(t *testing.T) {
	cfg := validConfig()
	cfg.SampleRateHertz = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive sample rate")
	}
}

func TestValidate_UnsupportedEncoding(t *testing.T) {
	cfg := validConfig()
	cfg.AudioEncoding = "mp3"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestValidate_EncodingIsCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.AudioEncoding = "LINEAR16"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_DiscordSettingsComeTogether(t *testing.T) {
	cfg := validConfig()
	cfg.DiscordToken = "token"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when only the discord token is set")
	}
	cfg.DiscordChannelID = "channel"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_NonPositiveMaxCharsIsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.MaxChars = 0
	if err := cfg.ValidateForJob(); err != nil {
		t.Fatalf("expected degenerate max chars to be accepted, got %v", err)
	}
}

func TestValidateForJob_MissingRequired(t *testing.T) {
	cfg := validConfig()
	cfg.OutputStorage = ""
	if err := cfg.ValidateForJob(); err == nil {
		t.Fatal("expected error when output storage is missing")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("output storage is only required for jobs, got %v", err)
	}
}

func TestValidateForJob_RequiresGCSInput(t *testing.T) {
	cfg := validConfig()
	cfg.StorageURI = "/tmp/audio.raw"
	if err := cfg.ValidateForJob(); err == nil {
		t.Fatal("expected error for non-gcs input")
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}

func TestOutputBase(t *testing.T) {
	cfg := validConfig()
	if got := cfg.OutputBase(); got != "brooklyn_bridge.raw/en-US" {
		t.Fatalf("unexpected derived base: %s", got)
	}
	cfg.OutputBaseName = "custom/name"
	if got := cfg.OutputBase(); got != "custom/name" {
		t.Fatalf("unexpected explicit base: %s", got)
	}
}
