package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/cornerpick/internal/mcp"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP server on stdio. It is meant to be launched by an MCP client
and exposes the monitor layout and the stored popup position as tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			// stdout carries the protocol; logs go to stderr only.
			logger := opts.newLogger(res.Config, cmd.ErrOrStderr())

			sess, err := opts.openSession(res.Config, false)
			if err != nil {
				return err
			}
			defer sess.Close()

			server, err := mcp.NewServer(mcp.Options{
				Screens:    sess.screens,
				ConfigPath: res.Path,
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("mcp server starting", "config", res.Path, "screens", len(sess.screens.Monitors()))
			if err := server.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	})
	return cmd
}
