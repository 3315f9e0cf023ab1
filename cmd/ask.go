package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"terravox/internal/intent"

	"github.com/spf13/cobra"
)

// askCmd runs intent detection over a sentence and reports what was found,
// without generating anything.
var askCmd = &cobra.Command{
	Use:   "ask [sentence]",
	Short: "Detect provisioning intent in a natural-language request",
	Long: `Classify a free-text provisioning request into cloud resource categories.

Examples:
  terravox ask "Deploy a small Ubuntu server on AWS with MySQL"
  terravox ask "Create a VPC with two subnets and a load balancer"
  terravox ask --json "Launch a Kubernetes cluster without monitoring"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentence := strings.Join(args, " ")
		asJSON, _ := cmd.Flags().GetBool("json")

		parser, err := buildParser()
		if err != nil {
			return err
		}

		result := parser.Detect(sentence)
		if asJSON {
			return printDetectionJSON(parser, result)
		}
		printDetection(parser, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().Bool("json", false, "print the detection result as JSON")
}

func sortedNegated(result intent.Result) []string {
	negated := make([]string, 0, len(result.NegatedCategories))
	for name := range result.NegatedCategories {
		negated = append(negated, name)
	}
	sort.Strings(negated)
	return negated
}

func printDetection(parser *intent.Parser, result intent.Result) {
	fmt.Printf("Sentence: %s\n", result.RawSentence)
	fmt.Printf("Action:   %s\n", result.Action)

	if len(result.Categories) == 0 {
		fmt.Println("No provisioning intent detected.")
	} else {
		fmt.Println("Detected categories:")
		for _, cat := range parser.Categories() {
			if keywords, ok := result.Categories[cat.Name]; ok {
				fmt.Printf("  %-12s %s\n", cat.Name, strings.Join(keywords, ", "))
			}
		}
	}

	if negated := sortedNegated(result); len(negated) > 0 {
		fmt.Printf("Excluded:  %s\n", strings.Join(negated, ", "))
	}
	if provider := parser.NormalizeProvider(result); provider != "" {
		fmt.Printf("Provider:  %s\n", provider)
	}
	if osName := parser.ExtractOS(result); osName != "" {
		fmt.Printf("OS:        %s\n", osName)
	}

	if parser.Validate(result) {
		fmt.Println("Valid intent: yes")
	} else {
		fmt.Println("Valid intent: no (nothing detected, or a category is both requested and excluded)")
	}
}

func printDetectionJSON(parser *intent.Parser, result intent.Result) error {
	payload := struct {
		Sentence          string              `json:"sentence"`
		Action            string              `json:"action"`
		Categories        map[string][]string `json:"categories"`
		NegatedCategories []string            `json:"negated_categories"`
		Provider          string              `json:"provider,omitempty"`
		OperatingSystem   string              `json:"operating_system,omitempty"`
		Valid             bool                `json:"valid"`
	}{
		Sentence:          result.RawSentence,
		Action:            string(result.Action),
		Categories:        result.Categories,
		NegatedCategories: sortedNegated(result),
		Provider:          parser.NormalizeProvider(result),
		OperatingSystem:   parser.ExtractOS(result),
		Valid:             parser.Validate(result),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding detection: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
