package cmd

import (
	"fmt"
	"strings"

	"terravox/internal/terraform"
	"terravox/internal/wizard"

	"github.com/spf13/cobra"
)

// generateCmd goes from a sentence straight to Terraform files, prompting
// only for parameters the sentence does not answer (or none with --defaults).
var generateCmd = &cobra.Command{
	Use:   "generate [sentence]",
	Short: "Generate Terraform configuration from a natural-language request",
	Long: `Detect provisioning intent in a sentence, fill the remaining parameters
through menus (or provider defaults with --defaults), and write main.tf,
variables.tf and outputs.tf.

Examples:
  terravox generate "Deploy a small Ubuntu server on AWS with MySQL"
  terravox generate --defaults --region eu-west-1 "Create a VPC with a postgres database"
  terravox generate --defaults --out ./infra "Launch a server on GCP without monitoring"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentence := strings.Join(args, " ")
		useDefaults, _ := cmd.Flags().GetBool("defaults")
		outDir, _ := cmd.Flags().GetString("out")
		region, _ := cmd.Flags().GetString("region")
		instanceType, _ := cmd.Flags().GetString("instance-type")
		storageGB, _ := cmd.Flags().GetInt("storage")

		parser, err := buildParser()
		if err != nil {
			return err
		}

		result := parser.Detect(sentence)
		if len(result.Categories) == 0 {
			return fmt.Errorf("no provisioning intent detected in %q", sentence)
		}
		if !parser.Validate(result) {
			return fmt.Errorf("contradictory request: a category is both requested and excluded")
		}

		var cfg terraform.Config
		if useDefaults {
			cfg = wizard.ConfigFromDetection(parser, result)
		} else {
			prompter := wizard.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			var confirmed bool
			cfg, confirmed, err = prompter.Run(parser, &result)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if region != "" {
			cfg.Region = region
		}
		if instanceType != "" {
			cfg.InstanceType = instanceType
		}
		if storageGB > 0 {
			cfg.StorageGB = storageGB
		}

		g := terraform.NewGenerator(cfg)
		dir := terraform.OutputDir(outDir)
		if err := g.WriteFiles(dir); err != nil {
			return err
		}

		fmt.Printf("Terraform configuration written to %s/\n", dir)
		fmt.Println("Next steps:")
		fmt.Printf("  cd %s\n", dir)
		fmt.Println("  terraform init")
		fmt.Println("  terraform plan")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("defaults", false, "skip menus and use detected values plus provider defaults")
	generateCmd.Flags().String("out", "", "output directory (default ./terraform, or terraform.output_dir)")
	generateCmd.Flags().String("region", "", "override the target region")
	generateCmd.Flags().String("instance-type", "", "override the instance or VM size")
	generateCmd.Flags().Int("storage", 0, "override database storage size in GB")
}
