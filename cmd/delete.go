package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <lesson-id>",
	Short: "Delete a stored lesson plan and its sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deleted, err := st.PlanRepo().Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete plan: %w", err)
		}
		if !deleted {
			return fmt.Errorf("lesson plan %s not found", args[0])
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}
