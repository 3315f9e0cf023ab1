// Package gcp verifies Google Cloud application default credentials.
package gcp

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/oauth2/google"
)

type Client struct {
	debug bool
}

func NewClient(debug bool) *Client {
	return &Client{debug: debug}
}

// CheckCredentials locates application default credentials and returns the
// associated project ID. When the credentials carry no project, the active
// gcloud project is used; an empty project with nil error means credentials
// exist but no project is configured.
func (c *Client) CheckCredentials(ctx context.Context) (string, error) {
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return "", fmt.Errorf("locating application default credentials: %w", err)
	}
	if creds.ProjectID != "" {
		return creds.ProjectID, nil
	}

	if c.debug {
		fmt.Println("Credentials carry no project ID, asking gcloud")
	}
	out, err := exec.CommandContext(ctx, "gcloud", "config", "get-value", "project").Output()
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}
