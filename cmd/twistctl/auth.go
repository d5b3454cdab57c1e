package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	twist "github.com/peteraglen/twist-go-client"
)

var (
	authScopes []string
	authState  string
)

var authURLCmd = &cobra.Command{
	Use:   "auth-url",
	Short: "Print the URL an end user visits to authorize this integration",
	Long: `Print the authorization URL for the configured client id.

When --state is omitted a random state value is generated and printed on
stderr so it can be checked against the redirect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		state := authState
		if state == "" {
			state = twist.NewState()
			fmt.Fprintf(cmd.ErrOrStderr(), "state: %s\n", state)
		}

		u, err := c.AuthURL(parseScopes(authScopes), state)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), u)

		return nil
	},
}

var exchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for an access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		tok, err := c.ExchangeToken(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), tok)
	},
}

func parseScopes(raw []string) []twist.Scope {
	var scopes []twist.Scope

	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, twist.Scope(s))
			}
		}
	}

	return scopes
}

func init() {
	authURLCmd.Flags().StringSliceVarP(&authScopes, "scope", "s", []string{string(twist.ScopeUserRead)}, "scopes to request")
	authURLCmd.Flags().StringVar(&authState, "state", "", "opaque state value (random when empty)")

	rootCmd.AddCommand(authURLCmd, exchangeCmd)
}
