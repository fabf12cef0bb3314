package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Show a stored lesson plan in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		plan, err := st.PlanRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("lesson plan %s not found", args[0])
		}

		printPlan(plan)
		return nil
	},
}
