package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

var supportedAudioEncodings = map[string]struct{}{
	"auto":     {},
	"linear16": {},
	"mulaw":    {},
	"alaw":     {},
}

type Config struct {
	Env                        string
	StorageURI                 string
	LanguageCode               string
	SampleRateHertz            int
	AudioEncoding              string
	OutputStorage              string
	OutputBaseName             string
	MaxChars                   int
	FlushTrailingCue           bool
	RecognizeTimeout           time.Duration
	GoogleCloudProjectID       string
	GoogleCloudCredentialsJSON string
	GoogleCloudSpeechLocation  string
	GoogleCloudSpeechModel     string
	DatabaseURL                string
	TranscriptWebhookURL       string
	DiscordToken               string
	DiscordChannelID           string
}

// Validate checks settings every command depends on.
func (c *Config) Validate() error {
	if c.LanguageCode == "" {
		return fmt.Errorf("LANGUAGE_CODE is required")
	}
	if c.SampleRateHertz <= 0 {
		return fmt.Errorf("SAMPLE_RATE_HERTZ must be positive, got %d", c.SampleRateHertz)
	}
	if _, ok := supportedAudioEncodings[strings.ToLower(c.AudioEncoding)]; !ok {
		return fmt.Errorf("AUDIO_ENCODING %q is not supported", c.AudioEncoding)
	}
	if c.RecognizeTimeout <= 0 {
		return fmt.Errorf("RECOGNIZE_TIMEOUT must be positive, got %s", c.RecognizeTimeout)
	}
	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}

// ValidateForJob additionally checks what a full recognize-and-upload run
// needs.
func (c *Config) ValidateForJob() error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, req := range c.requiredJobFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if !strings.HasPrefix(c.StorageURI, "gs://") {
		return fmt.Errorf("STORAGE_URI must be a gs:// URI, got %q", c.StorageURI)
	}
	if _, err := url.Parse(c.OutputStorage); err != nil {
		return fmt.Errorf("OUTPUT_STORAGE is invalid: %w", err)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredJobFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "STORAGE_URI", value: c.StorageURI},
		{name: "OUTPUT_STORAGE", value: c.OutputStorage},
		{name: "GOOGLE_CLOUD_PROJECT_ID", value: c.GoogleCloudProjectID},
		{name: "GOOGLE_CLOUD_SPEECH_LOCATION", value: c.GoogleCloudSpeechLocation},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// OutputBase returns the object name prefix shared by the .srt and .txt
// outputs: OutputBaseName when set, otherwise "<audio file name>/<language>".
func (c *Config) OutputBase() string {
	if c.OutputBaseName != "" {
		return c.OutputBaseName
	}
	return path.Join(path.Base(c.StorageURI), c.LanguageCode)
}
