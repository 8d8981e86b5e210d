package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestResultsFromProto_FirstAlternativeAndTruncation(t *testing.T) {
	results := resultsFromProto([]*speechpb.SpeechRecognitionResult{
		{
			Alternatives: []*speechpb.SpeechRecognitionAlternative{
				{Words: []*speechpb.WordInfo{
					{Word: "Hello", StartOffset: durationpb.New(100*time.Millisecond + 999*time.Microsecond), EndOffset: durationpb.New(500 * time.Millisecond)},
					{Word: "world.", StartOffset: durationpb.New(600 * time.Millisecond), EndOffset: durationpb.New(time.Second + 250*time.Millisecond + 700*time.Microsecond)},
				}},
				{Words: []*speechpb.WordInfo{{Word: "ignored"}}},
			},
		},
		{},
		{
			Alternatives: []*speechpb.SpeechRecognitionAlternative{
				{Words: []*speechpb.WordInfo{{Word: "next"}}},
			},
		},
	})

	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	first := results[0].Words
	if len(first) != 2 || first[0].Text != "Hello" || first[1].Text != "world." {
		t.Fatalf("unexpected words: %+v", first)
	}
	if first[0].Start != 100*time.Millisecond {
		t.Fatalf("start should be truncated to milliseconds, got %s", first[0].Start)
	}
	if first[1].End != 1250*time.Millisecond {
		t.Fatalf("end should be truncated to milliseconds, got %s", first[1].End)
	}
	if w := results[1].Words[0]; w.Start != 0 || w.End != 0 {
		t.Fatalf("missing offsets should be zero, got %+v", w)
	}
}

func TestFileTranscriber_Recognize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	doc := `{
  "results": [
    {"alternatives": [{"transcript": "how old is the Brooklyn Bridge", "words": [
      {"word": "how", "startOffset": "0s", "endOffset": "0.300s"},
      {"word": "old?", "startOffset": "0.300s", "endOffset": "0.600s"}
    ]}], "languageCode": "en-us", "resultEndOffset": "0.700s"}
  ],
  "metadata": {}
}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	results, err := NewFileTranscriber().Recognize(context.Background(), transcriber.RecognizeRequest{AudioURI: path})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(results) != 1 || len(results[0].Words) != 2 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].Words[1].Text != "old?" || results[0].Words[1].End != 600*time.Millisecond {
		t.Fatalf("unexpected word: %+v", results[0].Words[1])
	}
}

func TestFileTranscriber_RecognizeMissingFile(t *testing.T) {
	_, err := NewFileTranscriber().Recognize(context.Background(), transcriber.RecognizeRequest{AudioURI: filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBatchRequest_UsesExplicitDecodingForRawAudio(t *testing.T) {
	stt := NewCloudSpeechTranscriber(CloudSpeechConfig{ProjectID: "p", Location: "global", Model: "long"}).(*CloudSpeechTranscriber)

	req := stt.batchRequest(transcriber.RecognizeRequest{
		AudioURI:        "gs://bucket/audio.raw",
		LanguageCode:    "en-US",
		SampleRateHertz: 16000,
		Encoding:        "LINEAR16",
	})
	if req.GetRecognizer() != "projects/p/locations/global/recognizers/_" {
		t.Fatalf("unexpected recognizer: %s", req.GetRecognizer())
	}
	explicit := req.GetConfig().GetExplicitDecodingConfig()
	if explicit == nil || explicit.GetSampleRateHertz() != 16000 || explicit.GetEncoding() != speechpb.ExplicitDecodingConfig_LINEAR16 {
		t.Fatalf("unexpected decoding config: %+v", req.GetConfig())
	}
	if !req.GetConfig().GetFeatures().GetEnableWordTimeOffsets() {
		t.Fatal("word time offsets must be enabled")
	}
	if req.GetFiles()[0].GetUri() != "gs://bucket/audio.raw" {
		t.Fatalf("unexpected file uri: %s", req.GetFiles()[0].GetUri())
	}

	auto := stt.batchRequest(transcriber.RecognizeRequest{Encoding: "auto"})
	if auto.GetConfig().GetAutoDecodingConfig() == nil {
		t.Fatal("expected auto decoding config")
	}
}
