package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and start a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				fatal("Failed to read password", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		ok, err := app.Auth.Login(context.Background(), args[0], password)
		if err != nil {
			fatal("Login failed", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Invalid credentials.")
			os.Exit(1)
		}

		fmt.Printf("Logged in as %s.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted if omitted)")
}
