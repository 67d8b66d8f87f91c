package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/services"
)

func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long: `Send the credentials to the job API. On success the returned token is
saved to the session file; on failure the API's message is printed as is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := services.NewAPIClient(services.Config{BaseURL: apiURL})
			token, err := services.NewAuthService(client).Login(cmd.Context(), username, password)
			if err != nil {
				var authErr *services.AuthenticationError
				if errors.As(err, &authErr) {
					return fmt.Errorf("*%s", authErr.Message)
				}
				return err
			}
			session := auth.NewFileSession(sessionFile)
			if err := session.Set(token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Token saved to %s\n", session.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.NewFileSession(sessionFile).Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
