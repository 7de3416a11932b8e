// Package cmd implements the command-line interface for rymflux.
package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/inline"
	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/query"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute for audiobook discovery")
	inlineCmd.Flags().StringP("book", "b", "", "Criteria for selecting a specific audiobook from the search results")
	inlineCmd.Flags().StringP("chapters", "e", "", "Criteria for selecting specific chapters from the chosen audiobook")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("fetch-metadata", "f", false, "Fetch external book metadata while preparing results")
	inlineCmd.Flags().BoolP("include-metadata", "M", false, "Include the matched external volume in the structured output")
	inlineCmd.Flags().BoolP("include-chapters", "C", false, "Fetch details to include chapter stream URLs for the selection")
	lo.Must0(viper.BindPFlag(key.MetadataFetchBooks, inlineCmd.Flags().Lookup("fetch-metadata")))

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Book selectors:
  first - first audiobook in the list
  last - last audiobook in the list
  exact - audiobook with a title equal to the query
  [number] - select audiobook by index (starting from 0)

Chapter selectors:
  first - first chapter in the list
  last - last chapter in the list
  all - all chapters in the list
  [number] - select chapter by index (starting from 0)
  [from]-[to] - select chapters by range
  @[substring]@ - select chapters by name substring

When using the json flag the book selector may be omitted. That way, every search result is included.`,

	PreRun: func(cmd *cobra.Command, args []string) {
		asJson, _ := cmd.Flags().GetBool("json")

		if !asJson {
			lo.Must0(cmd.MarkFlagRequired("book"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := provider.Load()
		handleErr(err)
		defer func() {
			_ = registry.Close()
		}()

		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		bookFlag := lo.Must(cmd.Flags().GetString("book"))
		bookPicker := mo.None[inline.BookPicker]()
		if bookFlag != "" {
			kind := bookFlag
			if _, err := strconv.Atoi(bookFlag); err == nil {
				kind = "index"
			}

			fn, err := inline.ParseBookPicker(kind, pickerValue(kind, bookFlag, searchQuery))
			handleErr(err)
			bookPicker = mo.Some(fn)
		}

		chapterFlag := lo.Must(cmd.Flags().GetString("chapters"))
		chaptersFilter := mo.None[inline.ChaptersFilter]()
		if chapterFlag != "" {
			fn, err := inline.ParseChaptersFilter(chapterFlag)
			handleErr(err)
			chaptersFilter = mo.Some(fn)
		}

		options := &inline.Options{
			Registry:        registry,
			Json:            lo.Must(cmd.Flags().GetBool("json")),
			Query:           searchQuery,
			IncludeMetadata: lo.Must(cmd.Flags().GetBool("include-metadata")),
			BookPicker:      bookPicker,
			ChaptersFilter:  chaptersFilter,
			Out:             writer,
			Chapters:        lo.Must(cmd.Flags().GetBool("include-chapters")) || chapterFlag != "",
		}

		handleErr(inline.Run(options))
	},
}

// pickerValue resolves the value argument for a picker kind: the raw flag for
// index selection, the search query for exact title matching.
func pickerValue(kind, flag, query string) string {
	switch kind {
	case "index":
		return flag
	case "exact":
		return query
	default:
		return ""
	}
}

func init() {
	inlineCmd.AddCommand(inlineBooksCmd)
}

// inlineBooksCmd manages external book metadata operations in inline mode.
var inlineBooksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage external book metadata operations in inline mode",
}

func init() {
	inlineBooksCmd.AddCommand(inlineBooksSearchCmd)

	inlineBooksSearchCmd.Flags().StringP("title", "t", "", "The book title to search the metadata catalog for")
	inlineBooksSearchCmd.Flags().StringP("author", "a", "", "An optional author name to narrow the search")
	inlineBooksSearchCmd.Flags().BoolP("closest", "c", false, "Return only the closest match by title distance")

	lo.Must0(inlineBooksSearchCmd.MarkFlagRequired("title"))
}

// inlineBooksSearchCmd performs a metadata catalog search by book title.
var inlineBooksSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Perform a metadata catalog search by book title and return the results",
	Run: func(cmd *cobra.Command, args []string) {
		title := lo.Must(cmd.Flags().GetString("title"))
		author := lo.Must(cmd.Flags().GetString("author"))

		var toEncode any

		if lo.Must(cmd.Flags().GetBool("closest")) {
			volume, err := metadata.FindClosest(context.Background(), title, author)
			handleErr(err)
			toEncode = volume
		} else {
			volumes, err := metadata.SearchByTitle(context.Background(), title, author)
			handleErr(err)
			toEncode = volumes
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(toEncode))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("books", "b", false, "Generate the JSON Schema for metadata volume objects")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "audiobook", "chapter", "audioitem", "volume", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("books")):
			schema = reflector.Reflect([]*metadata.Volume{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
