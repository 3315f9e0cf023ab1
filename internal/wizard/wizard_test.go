package wizard

import (
	"strings"
	"testing"

	"terravox/internal/intent"
	"terravox/internal/terraform"
)

func newTestPrompter(input string) (*Prompter, *strings.Builder) {
	var out strings.Builder
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestSelectOption(t *testing.T) {
	p, _ := newTestPrompter("2\n")
	provider, err := p.Provider()
	if err != nil {
		t.Fatal(err)
	}
	if provider != "azure" {
		t.Errorf("provider = %q, want azure", provider)
	}
}

func TestSelectOptionRepromptsOnInvalid(t *testing.T) {
	p, out := newTestPrompter("9\nabc\n1\n")
	provider, err := p.Provider()
	if err != nil {
		t.Fatal(err)
	}
	if provider != "aws" {
		t.Errorf("provider = %q, want aws", provider)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("expected invalid-choice message")
	}
}

func TestSelectOptionEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	if _, err := p.Provider(); err == nil {
		t.Error("expected error on EOF")
	}
}

func TestRegionFallsBackToAWS(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	region, err := p.Region("unknown-cloud")
	if err != nil {
		t.Fatal(err)
	}
	if region != "us-east-1" {
		t.Errorf("region = %q, want aws fallback us-east-1", region)
	}
}

func TestStorageSize(t *testing.T) {
	p, out := newTestPrompter("-5\nabc\n100\n")
	size, err := p.StorageSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != 100 {
		t.Errorf("size = %d, want 100", size)
	}
	if !strings.Contains(out.String(), "greater than 0") {
		t.Error("expected positive-size message")
	}
}

func TestConfirm(t *testing.T) {
	cfg := terraform.Config{Provider: "aws", Region: "us-east-1", StorageGB: 20}

	p, out := newTestPrompter("maybe\nyes\n")
	ok, err := p.Confirm(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected confirmation")
	}
	if !strings.Contains(out.String(), "CONFIGURATION SUMMARY") {
		t.Error("expected summary banner")
	}

	p, _ = newTestPrompter("n\n")
	ok, err = p.Confirm(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected rejection")
	}
}

func TestRunWithoutDetection(t *testing.T) {
	parser := intent.NewParser()
	// provider, region, instance, os, database, storage, networking,
	// security, monitoring, confirm
	p, _ := newTestPrompter("1\n1\n2\n1\n1\n50\n2\n1\n2\nyes\n")

	cfg, confirmed, err := p.Run(parser, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !confirmed {
		t.Error("expected confirmation")
	}
	want := terraform.Config{
		Provider:        "aws",
		Region:          "us-east-1",
		InstanceType:    "t3.small",
		OperatingSystem: "Ubuntu",
		DatabaseEngine:  "mysql",
		StorageGB:       50,
		Networking:      "Custom VPC with Subnet",
		Security:        "Basic Firewall",
		Monitoring:      "Disable Monitoring",
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestRunPrefillsFromDetection(t *testing.T) {
	parser := intent.NewParser()
	detected := parser.Detect("Deploy a small Ubuntu server on AWS with MySQL")

	// region, instance, storage, networking, security, monitoring, confirm
	p, out := newTestPrompter("1\n1\n20\n2\n1\n1\nyes\n")

	cfg, confirmed, err := p.Run(parser, &detected)
	if err != nil {
		t.Fatal(err)
	}
	if !confirmed {
		t.Error("expected confirmation")
	}
	if cfg.Provider != "aws" {
		t.Errorf("provider = %q, want detected aws", cfg.Provider)
	}
	if cfg.OperatingSystem != "Ubuntu" {
		t.Errorf("os = %q, want detected Ubuntu", cfg.OperatingSystem)
	}
	if cfg.DatabaseEngine != "mysql" {
		t.Errorf("database = %q, want detected mysql", cfg.DatabaseEngine)
	}
	if !strings.Contains(out.String(), "Detected provider: aws") {
		t.Error("expected detected-provider notice")
	}
	if strings.Contains(out.String(), "SELECT CLOUD PROVIDER") {
		t.Error("provider menu should be skipped when detected")
	}
}

func TestRunSkipsNegatedDatabase(t *testing.T) {
	parser := intent.NewParser()
	detected := parser.Detect("deploy a server without a database")

	// provider, region, instance, os, storage, networking, security,
	// monitoring, confirm (database menu skipped)
	p, out := newTestPrompter("1\n1\n1\n1\n20\n1\n1\n2\nyes\n")

	cfg, _, err := p.Run(parser, &detected)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseEngine != "" {
		t.Errorf("database = %q, want skipped", cfg.DatabaseEngine)
	}
	if !strings.Contains(out.String(), "Skipping database") {
		t.Error("expected skip notice")
	}
	if strings.Contains(out.String(), "SELECT DATABASE ENGINE") {
		t.Error("database menu should not be shown")
	}
}

func TestConfigFromDetection(t *testing.T) {
	parser := intent.NewParser()

	detected := parser.Detect("Deploy a small Ubuntu server on AWS with PostgreSQL and monitoring")
	cfg := ConfigFromDetection(parser, detected)

	if cfg.Provider != "aws" {
		t.Errorf("provider = %q, want aws", cfg.Provider)
	}
	if cfg.OperatingSystem != "Ubuntu" {
		t.Errorf("os = %q, want Ubuntu", cfg.OperatingSystem)
	}
	if cfg.DatabaseEngine != "postgres" {
		t.Errorf("database = %q, want postgres", cfg.DatabaseEngine)
	}
	if cfg.Monitoring != "Enable Monitoring & Alerts" {
		t.Errorf("monitoring = %q, want enabled", cfg.Monitoring)
	}

	plain := ConfigFromDetection(parser, parser.Detect("create a server"))
	if plain.Provider != "" || plain.DatabaseEngine != "" || plain.Monitoring != "" {
		t.Errorf("unexpected prefill from plain sentence: %+v", plain)
	}
}

func TestRunDisablesNegatedMonitoring(t *testing.T) {
	parser := intent.NewParser()
	detected := parser.Detect("create a vpc and i don't want monitoring")

	// provider, region, instance, os, database, storage, security, confirm
	// (networking prefilled from vpc, monitoring menu skipped)
	p, _ := newTestPrompter("1\n1\n1\n1\n1\n20\n1\nyes\n")

	cfg, _, err := p.Run(parser, &detected)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Monitoring != "Disable Monitoring" {
		t.Errorf("monitoring = %q, want disabled", cfg.Monitoring)
	}
	if cfg.Networking != "Custom VPC with Subnet" {
		t.Errorf("networking = %q, want prefilled custom VPC", cfg.Networking)
	}
}
