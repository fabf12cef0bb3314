package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonforge/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lesson plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetString("grade")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		var plans []store.PlanSummary
		if topic == "" && subject == "" && grade == "" {
			plans, err = st.PlanRepo().Recent(ctx, limit)
		} else {
			plans, err = st.PlanRepo().Search(ctx, store.PlanQuery{
				Topic:      topic,
				Subject:    subject,
				GradeLevel: grade,
				Limit:      limit,
			})
		}
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}

		if len(plans) == 0 {
			fmt.Println("No lesson plans found.")
			return nil
		}

		fmt.Printf("%-8s  %-36s  %-14s  %-6s  %-8s  %s\n",
			"ID", "Title", "Subject", "Grade", "Sessions", "Created")
		fmt.Println(strings.Repeat("─", 96))

		for _, p := range plans {
			fmt.Printf("%-8s  %-36s  %-14s  %-6s  %-8d  %s\n",
				p.LessonID,
				truncate(p.Title, 36),
				truncate(p.Subject, 14),
				p.GradeLevel,
				p.SessionCount,
				p.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}

		fmt.Printf("\n%d plans\n", len(plans))
		return nil
	},
}

func init() {
	listCmd.Flags().String("topic", "", "Filter by topic substring")
	listCmd.Flags().String("subject", "", "Filter by subject substring")
	listCmd.Flags().String("grade", "", "Filter by grade level")
	listCmd.Flags().IntP("limit", "n", 20, "Number of plans to show")
}
