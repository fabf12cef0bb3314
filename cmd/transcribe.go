package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonforge/internal/llm"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a recording and store the transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		audio, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read audio file: %w", err)
		}
		mime, err := audioMIME(path)
		if err != nil {
			return err
		}

		cfg, err := llm.ResolveConfig()
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		stt, err := llm.NewTranscriber(cfg.Transcribe)
		if err != nil {
			return fmt.Errorf("transcription backend: %w", err)
		}
		adapter := transcribe.NewAdapter(stt)

		transcript, err := adapter.Transcribe(ctx, transcribe.AudioInput(audio, mime))
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stored := &store.StoredTranscript{
			Text:       transcript.Text,
			Source:     string(transcript.Source),
			Confidence: transcript.Confidence,
		}
		if err := st.TranscriptRepo().Save(ctx, stored); err != nil {
			return fmt.Errorf("save transcript: %w", err)
		}

		fmt.Printf("Transcript #%d", stored.ID)
		if transcript.Confidence != nil {
			fmt.Printf(" (confidence %.2f)", *transcript.Confidence)
		}
		fmt.Println()
		fmt.Println(transcript.Text)
		return nil
	},
}

// audioMIME maps an audio file extension to the MIME type the
// transcription endpoint expects.
func audioMIME(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "audio/wav", nil
	case ".mp3":
		return "audio/mpeg", nil
	case ".m4a":
		return "audio/mp4", nil
	case ".ogg":
		return "audio/ogg", nil
	case ".opus":
		return "audio/opus", nil
	case ".flac":
		return "audio/flac", nil
	case ".webm":
		return "audio/webm", nil
	default:
		return "", fmt.Errorf("unsupported audio format %q (want wav, mp3, m4a, ogg, opus, flac, or webm)", filepath.Ext(path))
	}
}
