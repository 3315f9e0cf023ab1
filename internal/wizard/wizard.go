// Package wizard collects provisioning parameters through numbered terminal
// menus, prefilling answers already present in a detection result.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"terravox/internal/intent"
	"terravox/internal/terraform"
)

// Prompter runs numbered menus over an injected reader/writer pair so the
// flows stay testable without a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

type option struct {
	value string
	label string
}

var providerOptions = []option{
	{"aws", "AWS (Amazon Web Services)"},
	{"azure", "Azure (Microsoft Azure)"},
	{"gcp", "GCP (Google Cloud Platform)"},
}

var regionOptions = map[string][]option{
	"aws": {
		{"us-east-1", "us-east-1 (N. Virginia)"},
		{"us-west-2", "us-west-2 (Oregon)"},
		{"eu-west-1", "eu-west-1 (Ireland)"},
		{"ap-southeast-1", "ap-southeast-1 (Singapore)"},
	},
	"azure": {
		{"eastus", "eastus (East US)"},
		{"westus", "westus (West US)"},
		{"westeurope", "westeurope (West Europe)"},
		{"southeastasia", "southeastasia (Southeast Asia)"},
	},
	"gcp": {
		{"us-central1", "us-central1 (Iowa)"},
		{"us-east1", "us-east1 (South Carolina)"},
		{"europe-west1", "europe-west1 (Belgium)"},
		{"asia-southeast1", "asia-southeast1 (Singapore)"},
	},
}

var instanceOptions = map[string][]option{
	"aws": {
		{"t2.micro", "t2.micro             - 1 vCPU, 1 GB RAM (Free tier)"},
		{"t3.small", "t3.small             - 2 vCPUs, 2 GB RAM"},
		{"t3.medium", "t3.medium            - 2 vCPUs, 4 GB RAM"},
		{"m5.large", "m5.large             - 2 vCPUs, 8 GB RAM"},
		{"m5.xlarge", "m5.xlarge            - 4 vCPUs, 16 GB RAM"},
	},
	"azure": {
		{"Standard_B1s", "Standard_B1s         - 1 vCPU, 1 GB RAM"},
		{"Standard_B2s", "Standard_B2s         - 2 vCPUs, 4 GB RAM"},
		{"Standard_D2s_v3", "Standard_D2s_v3      - 2 vCPUs, 8 GB RAM"},
		{"Standard_D4s_v3", "Standard_D4s_v3      - 4 vCPUs, 16 GB RAM"},
	},
	"gcp": {
		{"e2-micro", "e2-micro             - 0.25-2 vCPUs, 1 GB RAM"},
		{"e2-small", "e2-small             - 0.5-2 vCPUs, 2 GB RAM"},
		{"e2-medium", "e2-medium            - 1-2 vCPUs, 4 GB RAM"},
		{"n2-standard-2", "n2-standard-2        - 2 vCPUs, 8 GB RAM"},
		{"n2-standard-4", "n2-standard-4        - 4 vCPUs, 16 GB RAM"},
	},
}

var osOptions = []option{
	{"Ubuntu", "Ubuntu"},
	{"Windows", "Windows"},
	{"Amazon Linux", "Amazon Linux"},
}

var databaseOptions = []option{
	{"mysql", "MySQL"},
	{"postgres", "PostgreSQL"},
	{"mongodb", "MongoDB"},
}

var networkingOptions = []option{
	{"Default VPC", "Default VPC"},
	{"Custom VPC with Subnet", "Custom VPC with Subnet"},
	{"Private Network Only", "Private Network Only"},
}

var securityOptions = []option{
	{"Basic Firewall", "Basic Firewall"},
	{"Security Group (Strict Rules)", "Security Group (Strict Rules)"},
	{"Custom IAM Policy", "Custom IAM Policy"},
}

var monitoringOptions = []option{
	{"Enable Monitoring & Alerts", "Enable Monitoring & Alerts"},
	{"Disable Monitoring", "Disable Monitoring"},
}

// dbEngines maps detected database keywords to wizard engine values.
var dbEngines = map[string]string{
	"mysql":      "mysql",
	"mariadb":    "mysql",
	"postgres":   "postgres",
	"postgresql": "postgres",
	"mongodb":    "mongodb",
}

func (p *Prompter) banner(title string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, strings.Repeat("=", 60))
	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out, strings.Repeat("=", 60))
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// selectOption shows a numbered menu and re-prompts until a valid choice.
func (p *Prompter) selectOption(title string, options []option) (string, error) {
	p.banner(title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt.label)
	}

	for {
		fmt.Fprintf(p.out, "\nEnter your choice (1-%d): ", len(options))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(p.out, "Invalid choice. Please enter 1-%d.\n", len(options))
			continue
		}
		selected := options[choice-1]
		fmt.Fprintf(p.out, "Selected: %s\n", selected.label)
		return selected.value, nil
	}
}

func (p *Prompter) Provider() (string, error) {
	return p.selectOption("SELECT CLOUD PROVIDER", providerOptions)
}

func (p *Prompter) Region(provider string) (string, error) {
	options, ok := regionOptions[provider]
	if !ok {
		options = regionOptions["aws"]
	}
	return p.selectOption("SELECT REGION FOR "+strings.ToUpper(provider), options)
}

func (p *Prompter) InstanceType(provider string) (string, error) {
	options, ok := instanceOptions[provider]
	if !ok {
		options = instanceOptions["aws"]
	}
	return p.selectOption("SELECT INSTANCE SIZE FOR "+strings.ToUpper(provider), options)
}

func (p *Prompter) OperatingSystem() (string, error) {
	return p.selectOption("SELECT OPERATING SYSTEM", osOptions)
}

func (p *Prompter) DatabaseEngine() (string, error) {
	return p.selectOption("SELECT DATABASE ENGINE", databaseOptions)
}

func (p *Prompter) Networking() (string, error) {
	return p.selectOption("SELECT NETWORKING OPTION", networkingOptions)
}

func (p *Prompter) Security() (string, error) {
	return p.selectOption("SELECT SECURITY OPTION", securityOptions)
}

func (p *Prompter) Monitoring() (string, error) {
	return p.selectOption("SELECT MONITORING OPTION", monitoringOptions)
}

// StorageSize prompts for a positive storage size in GB.
func (p *Prompter) StorageSize() (int, error) {
	p.banner("SPECIFY STORAGE SIZE")
	for {
		fmt.Fprint(p.out, "Enter storage size in GB (e.g., 20, 100, 500): ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		size, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if size <= 0 {
			fmt.Fprintln(p.out, "Storage size must be greater than 0.")
			continue
		}
		fmt.Fprintf(p.out, "Storage size: %d GB\n", size)
		return size, nil
	}
}

// Confirm shows the collected configuration and asks for a yes/no answer.
func (p *Prompter) Confirm(cfg terraform.Config) (bool, error) {
	p.banner("CONFIGURATION SUMMARY")
	fmt.Fprintf(p.out, "  %-20s: %s\n", "provider", cfg.Provider)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "region", cfg.Region)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "instance_type", cfg.InstanceType)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "operating_system", cfg.OperatingSystem)
	database := cfg.DatabaseEngine
	if database == "" {
		database = "none"
	}
	fmt.Fprintf(p.out, "  %-20s: %s\n", "database_engine", database)
	fmt.Fprintf(p.out, "  %-20s: %d GB\n", "storage_size", cfg.StorageGB)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "networking", cfg.Networking)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "security", cfg.Security)
	fmt.Fprintf(p.out, "  %-20s: %s\n", "monitoring", cfg.Monitoring)
	fmt.Fprintln(p.out, strings.Repeat("=", 60))

	for {
		fmt.Fprint(p.out, "\nProceed with this configuration? (yes/no): ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please enter 'yes' or 'no'.")
		}
	}
}

// ConfigFromDetection builds a provisioning config from a detection result
// alone, without prompting. Unanswered parameters stay zero and pick up
// generator defaults.
func ConfigFromDetection(parser *intent.Parser, result intent.Result) terraform.Config {
	cfg := terraform.Config{
		Provider:        parser.NormalizeProvider(result),
		OperatingSystem: parser.ExtractOS(result),
	}
	for _, keyword := range result.Categories["database"] {
		if engine, ok := dbEngines[keyword]; ok {
			cfg.DatabaseEngine = engine
			break
		}
	}
	if result.Matched("monitoring") {
		cfg.Monitoring = "Enable Monitoring & Alerts"
	}
	return cfg
}

// Run walks through every menu, skipping questions a detection result
// already answers. Negated categories count as explicit refusals: a negated
// database skips the engine menu entirely and a negated monitoring category
// disables monitoring without asking. Returns the collected configuration
// and whether the user confirmed it.
func (p *Prompter) Run(parser *intent.Parser, detected *intent.Result) (terraform.Config, bool, error) {
	var cfg terraform.Config
	var err error

	if detected != nil {
		if provider := parser.NormalizeProvider(*detected); provider != "" {
			cfg.Provider = provider
			fmt.Fprintf(p.out, "Detected provider: %s\n", provider)
		}
		if osName := parser.ExtractOS(*detected); osName != "" {
			cfg.OperatingSystem = osName
			fmt.Fprintf(p.out, "Detected operating system: %s\n", osName)
		}
	}

	if cfg.Provider == "" {
		if cfg.Provider, err = p.Provider(); err != nil {
			return cfg, false, err
		}
	}
	if cfg.Region, err = p.Region(cfg.Provider); err != nil {
		return cfg, false, err
	}
	if cfg.InstanceType, err = p.InstanceType(cfg.Provider); err != nil {
		return cfg, false, err
	}
	if cfg.OperatingSystem == "" {
		if cfg.OperatingSystem, err = p.OperatingSystem(); err != nil {
			return cfg, false, err
		}
	}

	askDatabase := true
	if detected != nil {
		switch {
		case detected.Negated("database") && !detected.Matched("database"):
			askDatabase = false
			fmt.Fprintln(p.out, "Skipping database (excluded by request)")
		case detected.Matched("database"):
			for _, keyword := range detected.Categories["database"] {
				if engine, ok := dbEngines[keyword]; ok {
					cfg.DatabaseEngine = engine
					askDatabase = false
					fmt.Fprintf(p.out, "Detected database engine: %s\n", engine)
					break
				}
			}
		}
	}
	if askDatabase {
		if cfg.DatabaseEngine, err = p.DatabaseEngine(); err != nil {
			return cfg, false, err
		}
	}

	if cfg.StorageGB, err = p.StorageSize(); err != nil {
		return cfg, false, err
	}

	if detected != nil && detected.Matched("networking") {
		cfg.Networking = "Custom VPC with Subnet"
		fmt.Fprintln(p.out, "Detected networking request: Custom VPC with Subnet")
	} else {
		if cfg.Networking, err = p.Networking(); err != nil {
			return cfg, false, err
		}
	}

	if cfg.Security, err = p.Security(); err != nil {
		return cfg, false, err
	}

	switch {
	case detected != nil && detected.Negated("monitoring") && !detected.Matched("monitoring"):
		cfg.Monitoring = "Disable Monitoring"
		fmt.Fprintln(p.out, "Monitoring disabled (excluded by request)")
	case detected != nil && detected.Matched("monitoring"):
		cfg.Monitoring = "Enable Monitoring & Alerts"
		fmt.Fprintln(p.out, "Detected monitoring request: enabled")
	default:
		if cfg.Monitoring, err = p.Monitoring(); err != nil {
			return cfg, false, err
		}
	}

	confirmed, err := p.Confirm(cfg)
	if err != nil {
		return cfg, false, err
	}
	return cfg, confirmed, nil
}
