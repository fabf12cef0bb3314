package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonforge/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <lesson-id>",
	Short: "Render a stored lesson plan to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatVal, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format, err := export.ParseFormat(formatVal)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		plan, err := st.PlanRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("lesson plan %s not found", args[0])
		}

		artifact, err := export.Render(plan, format)
		if err != nil {
			return err
		}

		path := output
		switch {
		case path == "":
			path = artifact.Filename
		default:
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = filepath.Join(path, artifact.Filename)
			}
		}

		if err := os.WriteFile(path, artifact.Bytes, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", path, len(artifact.Bytes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "document", "Export format: document (docx) or printable (html)")
	exportCmd.Flags().StringP("output", "o", "", "Output file or directory (default: artifact filename in cwd)")
}
