package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	twist "github.com/peteraglen/twist-go-client"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user the access token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		user, err := c.GetSessionUser(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), user)
	},
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List the workspaces of the session user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		workspaces, err := c.GetAllWorkspaces(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), workspaces)
	},
}

var showArchived bool

var channelsCmd = &cobra.Command{
	Use:   "channels <workspace-id>",
	Short: "List the channels of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		opts := twist.GetChannelsOptions{}
		if cmd.Flags().Changed("archived") {
			opts.Archived = &showArchived
		}

		channels, err := c.GetAllChannels(cmd.Context(), workspaceID, opts)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), channels)
	},
}

var threadLimit int

var threadsCmd = &cobra.Command{
	Use:   "threads <channel-id>",
	Short: "List the threads of a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		threads, err := c.GetAllThreads(cmd.Context(), channelID, twist.GetThreadsOptions{Limit: threadLimit})
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), threads)
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}

	return id, nil
}

func init() {
	channelsCmd.Flags().BoolVar(&showArchived, "archived", false, "only archived (true) or only active (false) channels")
	threadsCmd.Flags().IntVar(&threadLimit, "limit", 0, "maximum number of threads (server default when 0)")

	rootCmd.AddCommand(whoamiCmd, workspacesCmd, channelsCmd, threadsCmd)
}
