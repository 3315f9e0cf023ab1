// Package aws verifies AWS credentials before Terraform generation targets
// the provider.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/viper"
)

// Identity is the caller identity reported by STS.
type Identity struct {
	Account string
	ARN     string
	UserID  string
}

type Client struct {
	debug bool
}

func NewClient(debug bool) *Client {
	return &Client{debug: debug}
}

// CheckCredentials loads the default AWS config (honoring aws.profile and
// aws.region from configuration) and calls sts:GetCallerIdentity. A nil
// error means credentials resolve and are accepted by AWS.
func (c *Client) CheckCredentials(ctx context.Context) (*Identity, error) {
	var opts []func(*config.LoadOptions) error
	if profile := viper.GetString("aws.profile"); profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region := viper.GetString("aws.region"); region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	if c.debug {
		fmt.Printf("Checking AWS credentials in region %s\n", cfg.Region)
	}

	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("calling sts:GetCallerIdentity: %w", err)
	}

	return &Identity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
