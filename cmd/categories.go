package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// categoriesCmd lists the keyword tables the parser matches against, so
// users can see why a sentence did or did not classify.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List resource categories and their trigger keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := buildParser()
		if err != nil {
			return err
		}

		for _, cat := range parser.Categories() {
			fmt.Printf("%s:\n", cat.Name)
			fmt.Printf("  keywords: %s\n", strings.Join(cat.Keywords, ", "))
			if len(cat.CloudResources) > 0 {
				providers := make([]string, 0, len(cat.CloudResources))
				for provider := range cat.CloudResources {
					providers = append(providers, provider)
				}
				sort.Strings(providers)
				for _, provider := range providers {
					fmt.Printf("  %-5s -> %s\n", provider, strings.Join(cat.CloudResources[provider], ", "))
				}
			}
			fmt.Println()
		}

		fmt.Println("Actions:")
		for _, entry := range parser.Actions() {
			fmt.Printf("  %-8s %s\n", entry.Kind, strings.Join(entry.Verbs, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
