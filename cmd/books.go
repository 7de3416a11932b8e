// Package cmd implements the command-line interface for rymflux.
package cmd

import (
	"fmt"

	"github.com/rymflux-cli/rymflux/color"
	"github.com/rymflux-cli/rymflux/icon"
	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(booksCmd)
}

// booksCmd provides a parent command for the external book metadata catalog.
var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage the external book metadata integration",
}

func init() {
	booksCmd.AddCommand(booksKeyCmd)

	booksKeyCmd.Flags().StringP("set", "s", "", "Store an API key in the system keyring")
	booksKeyCmd.Flags().BoolP("delete", "d", false, "Remove the stored API key from the system keyring")

	booksKeyCmd.MarkFlagsMutuallyExclusive("set", "delete")
}

// booksKeyCmd manages the metadata catalog API key.
var booksKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the metadata catalog API key",
	Long: `Store, inspect or remove the API key used for metadata catalog requests.
The key is kept in the system keyring and can be overridden with the ` + metadata.EnvAPIKey + ` environment variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		switch {
		case cmd.Flags().Changed("set"):
			handleErr(metadata.SetAPIKey(lo.Must(cmd.Flags().GetString("set"))))
			fmt.Printf("%s API key stored\n", icon.Get(icon.Success))
		case lo.Must(cmd.Flags().GetBool("delete")):
			handleErr(metadata.DeleteAPIKey())
			fmt.Printf("%s API key removed\n", icon.Get(icon.Success))
		default:
			if key := metadata.APIKey(); key != "" {
				fmt.Println(style.Fg(color.Green)(key))
			} else {
				fmt.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
