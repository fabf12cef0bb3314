package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored plan and transcript statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.PlanRepo().Statistics(cmd.Context())
		if err != nil {
			return fmt.Errorf("query statistics: %w", err)
		}

		fmt.Printf("Lesson plans:  %d\n", stats.TotalPlans)
		fmt.Printf("Sessions:      %d\n", stats.TotalSessions)
		fmt.Printf("Transcripts:   %d\n", stats.TotalTranscripts)
		if stats.LastCreatedAt != nil {
			fmt.Printf("Last created:  %s\n", stats.LastCreatedAt.Local().Format("2006-01-02 15:04"))
		}

		if len(stats.SubjectCounts) > 0 {
			fmt.Println("\nPlans by subject")
			fmt.Println(strings.Repeat("─", 32))

			subjects := make([]string, 0, len(stats.SubjectCounts))
			for s := range stats.SubjectCounts {
				subjects = append(subjects, s)
			}
			sort.Strings(subjects)

			for _, s := range subjects {
				fmt.Printf("%-24s  %d\n", s, stats.SubjectCounts[s])
			}
		}

		return nil
	},
}
