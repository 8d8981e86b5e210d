package transcriber

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	speech "cloud.google.com/go/speech/apiv2"
	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/foxseedlab/speech2srt/external/gcloud"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"google.golang.org/api/option"
)

const (
	speechAPIEndpointPort = 443
	audioChannelCount     = 1
)

var explicitEncodings = map[string]speechpb.ExplicitDecodingConfig_AudioEncoding{
	"linear16": speechpb.ExplicitDecodingConfig_LINEAR16,
	"mulaw":    speechpb.ExplicitDecodingConfig_MULAW,
	"alaw":     speechpb.ExplicitDecodingConfig_ALAW,
}

type CloudSpeechConfig struct {
	ProjectID       string
	CredentialsJSON string
	Location        string
	Model           string
}

type CloudSpeechTranscriber struct {
	projectID       string
	credentialsJSON string
	location        string
	model           string
}

func NewCloudSpeechTranscriber(cfg CloudSpeechConfig) transcriber.Transcriber {
	return &CloudSpeechTranscriber{
		projectID:       cfg.ProjectID,
		credentialsJSON: cfg.CredentialsJSON,
		location:        strings.TrimSpace(cfg.Location),
		model:           strings.TrimSpace(cfg.Model),
	}
}

func (t *CloudSpeechTranscriber) Recognize(ctx context.Context, req transcriber.RecognizeRequest) ([]transcriber.Result, error) {
	slog.Info("starting cloud speech batch recognition", "audio_uri", req.AudioURI, "location", t.location, "language", req.LanguageCode, "model", t.model)

	opts, err := gcloud.ClientOptions(t.credentialsJSON)
	if err != nil {
		return nil, err
	}
	if t.location != "global" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("%s-speech.googleapis.com:%d", t.location, speechAPIEndpointPort)))
	}

	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	op, err := client.BatchRecognize(ctx, t.batchRequest(req))
	if err != nil {
		return nil, fmt.Errorf("start batch recognize: %w", err)
	}
	slog.Info("cloud speech operation started", "operation", op.Name())

	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for batch recognize: %w", err)
	}

	fileResult, ok := resp.GetResults()[req.AudioURI]
	if !ok {
		return nil, fmt.Errorf("batch recognize returned no result for %s", req.AudioURI)
	}
	if st := fileResult.GetError(); st != nil && st.GetCode() != 0 {
		return nil, fmt.Errorf("batch recognize failed for %s: code %d: %s", req.AudioURI, st.GetCode(), st.GetMessage())
	}

	results := resultsFromProto(fileResult.GetInlineResult().GetTranscript().GetResults())
	slog.Info("cloud speech batch recognition finished", "audio_uri", req.AudioURI, "results", len(results))
	return results, nil
}

func (t *CloudSpeechTranscriber) batchRequest(req transcriber.RecognizeRequest) *speechpb.BatchRecognizeRequest {
	config := decodingConfig(req)
	config.Model = t.model
	config.LanguageCodes = []string{req.LanguageCode}
	config.Features = &speechpb.RecognitionFeatures{
		EnableWordTimeOffsets:      true,
		EnableAutomaticPunctuation: true,
	}
	return &speechpb.BatchRecognizeRequest{
		Recognizer: fmt.Sprintf("projects/%s/locations/%s/recognizers/_", t.projectID, t.location),
		Config:     config,
		Files: []*speechpb.BatchRecognizeFileMetadata{
			{AudioSource: &speechpb.BatchRecognizeFileMetadata_Uri{Uri: req.AudioURI}},
		},
		RecognitionOutputConfig: &speechpb.RecognitionOutputConfig{
			Output: &speechpb.RecognitionOutputConfig_InlineResponseConfig{
				InlineResponseConfig: &speechpb.InlineOutputConfig{},
			},
		},
	}
}

func decodingConfig(req transcriber.RecognizeRequest) *speechpb.RecognitionConfig {
	cfg := &speechpb.RecognitionConfig{}
	encoding, ok := explicitEncodings[strings.ToLower(req.Encoding)]
	if !ok {
		cfg.DecodingConfig = &speechpb.RecognitionConfig_AutoDecodingConfig{
			AutoDecodingConfig: &speechpb.AutoDetectDecodingConfig{},
		}
		return cfg
	}
	cfg.DecodingConfig = &speechpb.RecognitionConfig_ExplicitDecodingConfig{
		ExplicitDecodingConfig: &speechpb.ExplicitDecodingConfig{
			Encoding:          encoding,
			SampleRateHertz:   int32(req.SampleRateHertz),
			AudioChannelCount: audioChannelCount,
		},
	}
	return cfg
}
