// Package azure verifies Azure CLI credentials.
package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Account is the subscription the Azure CLI is logged into.
type Account struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type Client struct {
	debug bool
}

func NewClient(debug bool) *Client {
	return &Client{debug: debug}
}

// CheckCredentials shells out to `az account show`, matching how the Azure
// CLI stores login state. Requires az to be installed and logged in.
func (c *Client) CheckCredentials(ctx context.Context) (*Account, error) {
	if c.debug {
		fmt.Println("Running az account show")
	}
	out, err := exec.CommandContext(ctx, "az", "account", "show", "-o", "json").Output()
	if err != nil {
		return nil, fmt.Errorf("running az account show (is az installed and logged in?): %w", err)
	}

	var account Account
	if err := json.Unmarshal(out, &account); err != nil {
		return nil, fmt.Errorf("parsing az account output: %w", err)
	}
	return &account, nil
}
