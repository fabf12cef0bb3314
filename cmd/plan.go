package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonforge/internal/app"
	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/resources"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a lesson plan",
	Long: `Generate a structured multi-session lesson plan from a topic or a
recorded lecture. Without --topic or --audio the interactive intake
form collects the request.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("topic", "", "Lesson topic, e.g. \"Fractions\"")
	planCmd.Flags().String("subject", "", "Curriculum subject, e.g. \"Math\"")
	planCmd.Flags().String("grade", "", "Target grade or class, e.g. \"5\"")
	planCmd.Flags().Int("sessions", 0, "Number of sessions")
	planCmd.Flags().Int("duration", 0, "Minutes per session")
	planCmd.Flags().String("text", "", "Free-form source text (defaults to the topic)")
	planCmd.Flags().String("audio", "", "Audio file to transcribe as the source")
	planCmd.Flags().String("export", "", "Also render the plan: document or printable")
	planCmd.Flags().StringP("output", "o", "", "Directory for the exported file (default: cwd)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	topic, _ := cmd.Flags().GetString("topic")
	subject, _ := cmd.Flags().GetString("subject")
	grade, _ := cmd.Flags().GetString("grade")
	sessions, _ := cmd.Flags().GetInt("sessions")
	duration, _ := cmd.Flags().GetInt("duration")
	text, _ := cmd.Flags().GetString("text")
	audioPath, _ := cmd.Flags().GetString("audio")
	exportVal, _ := cmd.Flags().GetString("export")
	outputDir, _ := cmd.Flags().GetString("output")

	meta := intake.Metadata{
		Topic:                  topic,
		Subject:                subject,
		GradeLevel:             grade,
		SessionCount:           sessions,
		SessionDurationMinutes: duration,
	}

	// Nothing to plan from on the command line: collect interactively.
	if topic == "" && audioPath == "" {
		collected, confirmed, err := app.RunIntake()
		if err != nil {
			return fmt.Errorf("intake: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
		meta = collected
	}

	var input transcribe.RawInput
	switch {
	case audioPath != "":
		audio, err := os.ReadFile(audioPath)
		if err != nil {
			return fmt.Errorf("read audio file: %w", err)
		}
		mime, err := audioMIME(audioPath)
		if err != nil {
			return err
		}
		input = transcribe.AudioInput(audio, mime)
	case text != "":
		input = transcribe.TextInput(text)
	default:
		input = transcribe.TextInput(meta.Topic)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	coordinator, _, err := buildStack(ctx, st)
	if err != nil {
		return err
	}

	fmt.Println("Generating lesson plan...")
	plan, err := coordinator.Run(ctx, input, meta)
	if err != nil {
		return err
	}

	printPlan(plan)
	printResources(resources.Suggest(plan.Request.Topic, plan.Request.Subject, plan.Request.GradeLevel))

	if exportVal != "" {
		format, err := export.ParseFormat(exportVal)
		if err != nil {
			return err
		}
		artifact, err := coordinator.Export(plan, format)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Bytes, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("\nExported %s\n", path)
	}

	return nil
}

func printPlan(plan *lessonplan.LessonPlan) {
	fmt.Printf("\n%s\n", plan.Title)
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("ID:       %s\n", plan.ID)
	fmt.Printf("Topic:    %s\n", plan.Request.Topic)
	fmt.Printf("Subject:  %s\n", plan.Request.Subject)
	fmt.Printf("Grade:    %s\n", plan.Request.GradeLevel)
	fmt.Printf("Sessions: %d x %d minutes\n",
		plan.Request.SessionCount, plan.Request.SessionDurationMinutes)

	for _, s := range plan.Sessions {
		fmt.Printf("\nSession %d: %s\n", s.Index, s.Title)
		for _, o := range s.Objectives {
			fmt.Printf("  • %s\n", o)
		}
		for _, a := range s.Activities {
			fmt.Printf("  %2d min  %s: %s\n", a.EstimatedMinutes, a.Title, a.Description)
		}
		if s.Worksheet != nil && len(s.Worksheet.Questions) > 0 {
			fmt.Println("  Worksheet:")
			for i, q := range s.Worksheet.Questions {
				fmt.Printf("    %d. %s\n", i+1, q.Prompt)
			}
		}
	}
}

func printResources(set resources.Set) {
	if len(set.Videos) == 0 && len(set.Web) == 0 {
		return
	}
	fmt.Println("\nSuggested resources")
	fmt.Println(strings.Repeat("─", 72))
	for _, l := range set.Videos {
		fmt.Printf("  %s\n    %s\n", l.Title, l.URL)
	}
	for _, l := range set.Web {
		fmt.Printf("  %s\n    %s\n", l.Title, l.URL)
	}
}
