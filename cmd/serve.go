package cmd

import (
	"fmt"

	"github.com/abhisek/lessonforge/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson pipeline over HTTP",
	Long:  "Starts the REST API used by the web frontend, backed by the same pipeline and database as the CLI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		mode, _ := cmd.Flags().GetString("mode")
		origins, _ := cmd.Flags().GetStringSlice("origins")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coordinator, adapter, err := buildStack(cmd.Context(), st)
		if err != nil {
			return err
		}

		srv, err := server.New(
			server.Config{Addr: addr, Mode: mode, AllowOrigins: origins},
			server.Deps{
				Coordinator: coordinator,
				Transcriber: adapter,
				Plans:       st.PlanRepo(),
				Transcripts: st.TranscriptRepo(),
			},
		)
		if err != nil {
			return fmt.Errorf("configure server: %w", err)
		}

		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", server.DefaultAddr, "Listen address")
	serveCmd.Flags().String("mode", "dev", "Run mode: dev or prod")
	serveCmd.Flags().StringSlice("origins", nil, "Allowed CORS origins (defaults to localhost dev ports)")
}
