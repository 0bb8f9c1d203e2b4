// Useradd command for the tome CLI.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var userAddPassword string

var userAddCmd = &cobra.Command{
	Use:   "useradd <username> <email>",
	Short: "Add a wiki user",
	Long: `Add a user who can sign in when the wiki runs in private mode. The
password is read from --password, or from stdin when the flag is absent.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userAddPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		users, err := openUserManager()
		if err != nil {
			return err
		}

		user, err := users.AddUser(args[0], password, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Added user %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "password for the new user (read from stdin if omitted)")
}
