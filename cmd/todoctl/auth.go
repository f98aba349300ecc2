package main

import (
	"github.com/spf13/cobra"

	"github.com/yaxhxv/todo-list-heyHomies/pkg/client"
)

func newSignupCommand() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.Signup(cmd.Context(), client.SignupInput{
				Email:    email,
				Password: password,
				Name:     name,
			})
			if err != nil {
				return err
			}
			cmd.Printf("signed up as %s <%s>\n", resp.User.Name, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (min 6 characters)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.Login(cmd.Context(), client.LoginInput{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			cmd.Printf("logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session token and forget it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Logout(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := api.Me(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%s <%s> (since %s)\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}
