package cmd

import (
	"context"
	"fmt"

	"terravox/internal/aws"
	"terravox/internal/azure"
	"terravox/internal/gcp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Check cloud provider credentials",
}

// credentialsTestCmd probes each provider's credential chain before the user
// runs terraform against the generated files. Failures are reported but do
// not abort the remaining providers.
var credentialsTestCmd = &cobra.Command{
	Use:       "test [provider]",
	Short:     "Test credentials for aws, azure, gcp or all of them",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"aws", "azure", "gcp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		debug := viper.GetBool("debug")

		providers := []string{"aws", "azure", "gcp"}
		if len(args) == 1 {
			providers = args[:1]
		}

		failures := 0
		for _, provider := range providers {
			switch provider {
			case "aws":
				identity, err := aws.NewClient(debug).CheckCredentials(ctx)
				if err != nil {
					failures++
					fmt.Printf("aws:   FAILED (%v)\n", err)
					continue
				}
				fmt.Printf("aws:   OK (account %s, %s)\n", identity.Account, identity.ARN)
			case "azure":
				account, err := azure.NewClient(debug).CheckCredentials(ctx)
				if err != nil {
					failures++
					fmt.Printf("azure: FAILED (%v)\n", err)
					continue
				}
				fmt.Printf("azure: OK (subscription %s, %s)\n", account.Name, account.ID)
			case "gcp":
				project, err := gcp.NewClient(debug).CheckCredentials(ctx)
				if err != nil {
					failures++
					fmt.Printf("gcp:   FAILED (%v)\n", err)
					continue
				}
				if project == "" {
					fmt.Println("gcp:   OK (credentials found, no project configured)")
					continue
				}
				fmt.Printf("gcp:   OK (project %s)\n", project)
			default:
				return fmt.Errorf("unknown provider %q (expected aws, azure or gcp)", provider)
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d provider(s) failed the credential check", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
	credentialsCmd.AddCommand(credentialsTestCmd)
}
