package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/speech2srt/internal/config"
)

type envConfig struct {
	Env                        string        `env:"ENV" envDefault:"production"`
	StorageURI                 string        `env:"STORAGE_URI" envDefault:"gs://cloud-samples-data/speech/brooklyn_bridge.raw"`
	LanguageCode               string        `env:"LANGUAGE_CODE" envDefault:"en-US"`
	SampleRateHertz            int           `env:"SAMPLE_RATE_HERTZ" envDefault:"44100"`
	AudioEncoding              string        `env:"AUDIO_ENCODING" envDefault:"auto"`
	OutputStorage              string        `env:"OUTPUT_STORAGE"`
	OutputBaseName             string        `env:"OUTPUT_BASE_NAME"`
	MaxChars                   int           `env:"MAX_CHARS" envDefault:"40"`
	FlushTrailingCue           bool          `env:"FLUSH_TRAILING_CUE" envDefault:"false"`
	RecognizeTimeout           time.Duration `env:"RECOGNIZE_TIMEOUT" envDefault:"60m"`
	GoogleCloudProjectID       string        `env:"GOOGLE_CLOUD_PROJECT_ID"`
	GoogleCloudCredentialsJSON string        `env:"GOOGLE_CLOUD_CREDENTIALS_JSON"`
	GoogleCloudSpeechLocation  string        `env:"GOOGLE_CLOUD_SPEECH_LOCATION" envDefault:"global"`
	GoogleCloudSpeechModel     string        `env:"GOOGLE_CLOUD_SPEECH_MODEL" envDefault:"long"`
	DatabaseURL                string        `env:"DATABASE_URL"`
	TranscriptWebhookURL       string        `env:"TRANSCRIPT_WEBHOOK_URL"`
	DiscordToken               string        `env:"DISCORD_TOKEN"`
	DiscordChannelID           string        `env:"DISCORD_CHANNEL_ID"`
}

// Load reads the environment. Validation is left to the caller because
// commands differ in what they require.
func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	return &internalconfig.Config{
		Env:                        raw.Env,
		StorageURI:                 raw.StorageURI,
		LanguageCode:               raw.LanguageCode,
		SampleRateHertz:            raw.SampleRateHertz,
		AudioEncoding:              raw.AudioEncoding,
		OutputStorage:              raw.OutputStorage,
		OutputBaseName:             raw.OutputBaseName,
		MaxChars:                   raw.MaxChars,
		FlushTrailingCue:           raw.FlushTrailingCue,
		RecognizeTimeout:           raw.RecognizeTimeout,
		GoogleCloudProjectID:       raw.GoogleCloudProjectID,
		GoogleCloudCredentialsJSON: raw.GoogleCloudCredentialsJSON,
		GoogleCloudSpeechLocation:  raw.GoogleCloudSpeechLocation,
		GoogleCloudSpeechModel:     raw.GoogleCloudSpeechModel,
		DatabaseURL:                raw.DatabaseURL,
		TranscriptWebhookURL:       raw.TranscriptWebhookURL,
		DiscordToken:               raw.DiscordToken,
		DiscordChannelID:           raw.DiscordChannelID,
	}, nil
}
