package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaxhxv/todo-list-heyHomies/pkg/client"
)

var (
	serverURL string
	tokenFile string

	api *client.Client
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoctl",
		Short: "todoctl - command line client for the todo-list API",
		Long: `todoctl talks to a running todo-list server.

Sign up or log in once; the bearer token is stored on disk and attached
to every subsequent call until you log out.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			path := tokenFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					home = "."
				}
				path = filepath.Join(home, ".todoctl", "token")
			}
			api = client.New(serverURL, client.WithTokenStore(client.NewFileStore(path)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:4000", "base URL of the todo-list server")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "path of the stored token (default ~/.todoctl/token)")

	rootCmd.AddCommand(newSignupCommand())
	rootCmd.AddCommand(newLoginCommand())
	rootCmd.AddCommand(newLogoutCommand())
	rootCmd.AddCommand(newWhoamiCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newDoneCommand())
	rootCmd.AddCommand(newRemoveCommand())

	return rootCmd
}
