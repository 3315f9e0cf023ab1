package cmd

import (
	"fmt"

	"terravox/internal/terraform"
	"terravox/internal/wizard"

	"github.com/spf13/cobra"
)

// wizardCmd runs the full interactive flow with no sentence at all.
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Walk through every provisioning question interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")

		parser, err := buildParser()
		if err != nil {
			return err
		}

		prompter := wizard.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		cfg, confirmed, err := prompter.Run(parser, nil)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}

		g := terraform.NewGenerator(cfg)
		dir := terraform.OutputDir(outDir)
		if err := g.WriteFiles(dir); err != nil {
			return err
		}

		fmt.Printf("Terraform configuration written to %s/\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().String("out", "", "output directory (default ./terraform, or terraform.output_dir)")
}
