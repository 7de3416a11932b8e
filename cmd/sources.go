// Package cmd implements the command-line interface for rymflux.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rymflux-cli/rymflux/color"
	"github.com/rymflux-cli/rymflux/icon"
	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/style"
	"github.com/rymflux-cli/rymflux/util"
	"github.com/rymflux-cli/rymflux/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for managing audiobook providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom audiobook providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all configured providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all configured providers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		configs, err := provider.LoadConfigs()
		handleErr(err)

		if len(configs) == 0 {
			configs = provider.DefaultConfigs()
			if printHeader {
				cmd.Println(headerStyle("Defaults (no sources file found):"))
			}
		} else if printHeader {
			cmd.Println(headerStyle("Configured:"))
		}

		for _, c := range configs {
			if printHeader {
				cmd.Printf("%s %s\n", c.Name, style.Faint(c.Type))
			} else {
				cmd.Println(c.Name)
			}
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInitCmd)
}

// sourcesInitCmd writes the annotated default sources file.
var sourcesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the annotated default sources file",
	Long:  `Create a commented sources file at the configuration directory to be edited by hand.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(provider.WriteDefaultSourcesFile())
		fmt.Printf("%s wrote %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(where.SourcesFile()))
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)
}

// sourcesUpdateCmd fetches the community sources file and swaps it in when changed.
var sourcesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest community sources file",
	Long: `Download the community-maintained sources file and replace the local one when its contents differ.
` + provider.RemoteSourcesURL,
	Run: func(cmd *cobra.Command, args []string) {
		e := util.PrintErasable(fmt.Sprintf("%s Fetching sources...", icon.Get(icon.Progress)))
		changed, err := provider.UpdateSources(context.Background())
		e()
		handleErr(err)

		if changed {
			fmt.Printf("%s sources updated\n", icon.Get(icon.Success))
		} else {
			fmt.Printf("%s sources already up to date\n", icon.Get(icon.Success))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the new provider")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The base URL of the target website to be scraped")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))

	sourcesGenCmd.SetOut(os.Stdout)
}

// sourcesGenTemplate is the scaffold printed by the gen subcommand, meant
// to be appended to the sources file and filled in with real selectors.
const sourcesGenTemplate = `  - type: custom
    name: {{ .Name }}
    base_url: {{ .URL }}
    rules:
      search:
        url: /search?q={query}
        item_container_selector: ".result"
        title_selector: ".title"
        url_selector: "a"
      details:
        chapter_container_selector: ".chapter"
        chapter_url_selector: "audio"
        author_selector: ".author"
        description_selector: ".description"
        cover_image_url_selector: ".cover img"
`

// sourcesGenCmd scaffolds a provider entry for the sources file.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new provider entry using a predefined template",
	Long:  `Generate a boilerplate sources file entry with the full set of scraping selectors.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := struct {
			Name string
			URL  string
		}{
			Name: strings.ToLower(util.SanitizeFilename(lo.Must(cmd.Flags().GetString("name")))),
			URL:  lo.Must(cmd.Flags().GetString("url")),
		}

		tmpl, err := template.New("source").Parse(sourcesGenTemplate)
		handleErr(err)

		handleErr(tmpl.Execute(cmd.OutOrStdout(), s))
	},
}
