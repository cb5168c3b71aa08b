package speech

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

const (
	MaxFileSize      = 5 * 1024 * 1024 // 5MB
	AllowedExtension = ".wav"
	DefaultLanguage  = "en-US"
)

// Transcriber turns a recorded audio description into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageCode string) (string, error)
}

// GoogleTranscriber uses Google Cloud Speech-to-Text.
type GoogleTranscriber struct {
	client *speechapi.Client
}

// NewGoogleTranscriber creates a speech client from a service account file.
func NewGoogleTranscriber(ctx context.Context, serviceAccountFile string) (*GoogleTranscriber, error) {
	client, err := speechapi.NewClient(ctx, option.WithCredentialsFile(serviceAccountFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &GoogleTranscriber{client: client}, nil
}

// Close releases the underlying client.
func (g *GoogleTranscriber) Close() error {
	return g.client.Close()
}

// CheckAudioFile rejects files that are not WAV recordings.
func CheckAudioFile(filename string) error {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != AllowedExtension {
		return fmt.Errorf("invalid file type: expected %s, got %s", AllowedExtension, ext)
	}
	return nil
}

// Transcribe converts the recording to 16kHz mono PCM and sends it for recognition.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, audioPath, languageCode string) (string, error) {
	if languageCode == "" {
		languageCode = DefaultLanguage
	}

	converted, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create output temp file: %w", err)
	}
	converted.Close()
	defer os.Remove(converted.Name())

	if err := convertAudio(ctx, audioPath, converted.Name()); err != nil {
		return "", err
	}

	audioData, err := os.ReadFile(converted.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read converted audio: %w", err)
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      languageCode,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	}

	resp, err := g.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}
	return joinTranscripts(resp), nil
}

func joinTranscripts(resp *speechpb.RecognizeResponse) string {
	var transcript strings.Builder
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		// Alternatives are ordered by confidence.
		transcript.WriteString(alts[0].GetTranscript())
		transcript.WriteString(" ")
	}
	return strings.TrimSpace(transcript.String())
}

func convertAudio(ctx context.Context, inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}
