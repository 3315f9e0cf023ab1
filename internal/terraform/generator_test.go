package terraform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewGeneratorDefaults(t *testing.T) {
	cfg := NewGenerator(Config{}).Config()

	if cfg.Provider != "aws" {
		t.Errorf("provider = %q, want aws", cfg.Provider)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("region = %q, want us-east-1", cfg.Region)
	}
	if cfg.InstanceType != "t2.micro" {
		t.Errorf("instance type = %q, want t2.micro", cfg.InstanceType)
	}
	if cfg.OperatingSystem != "Ubuntu" {
		t.Errorf("os = %q, want Ubuntu", cfg.OperatingSystem)
	}
	if cfg.StorageGB != 20 {
		t.Errorf("storage = %d, want 20", cfg.StorageGB)
	}

	azure := NewGenerator(Config{Provider: "azure"}).Config()
	if azure.Region != "eastus" || azure.InstanceType != "Standard_B1s" {
		t.Errorf("azure defaults = %q/%q", azure.Region, azure.InstanceType)
	}
	gcp := NewGenerator(Config{Provider: "gcp"}).Config()
	if gcp.Region != "us-central1" || gcp.InstanceType != "e2-micro" {
		t.Errorf("gcp defaults = %q/%q", gcp.Region, gcp.InstanceType)
	}
}

func TestProviderBlock(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"aws", `provider "aws"`},
		{"azure", `provider "azurerm"`},
		{"gcp", `provider "google"`},
	}
	for _, tt := range tests {
		g := NewGenerator(Config{Provider: tt.provider})
		if block := g.ProviderBlock(); !strings.Contains(block, tt.want) {
			t.Errorf("%s provider block missing %q", tt.provider, tt.want)
		}
		if block := g.ProviderBlock(); !strings.Contains(block, "required_providers") {
			t.Errorf("%s provider block missing required_providers", tt.provider)
		}
	}
}

func TestNetworkingBlock(t *testing.T) {
	custom := NewGenerator(Config{Provider: "aws", Networking: "Custom VPC with Subnet"}).NetworkingBlock()
	for _, resource := range []string{"aws_vpc", "aws_subnet", "aws_internet_gateway", "aws_route_table"} {
		if !strings.Contains(custom, resource) {
			t.Errorf("custom VPC block missing %s", resource)
		}
	}

	if block := NewGenerator(Config{Provider: "aws", Networking: "Default VPC"}).NetworkingBlock(); !strings.Contains(block, "default VPC") {
		t.Errorf("default networking block = %q", block)
	}

	azureDefault := NewGenerator(Config{Provider: "azure", Networking: "Default VPC"}).NetworkingBlock()
	if !strings.Contains(azureDefault, "azurerm_resource_group") {
		t.Error("azure always needs a resource group")
	}
	if strings.Contains(azureDefault, "azurerm_virtual_network") {
		t.Error("azure default networking should not create a vnet")
	}

	gcpCustom := NewGenerator(Config{Provider: "gcp", Networking: "Custom VPC with Subnet"}).NetworkingBlock()
	if !strings.Contains(gcpCustom, "google_compute_network") {
		t.Error("gcp custom networking missing compute network")
	}
}

func TestSecurityBlock(t *testing.T) {
	strict := NewGenerator(Config{Provider: "aws", Security: "Security Group (Strict Rules)"}).SecurityBlock()
	if !strings.Contains(strict, "var.admin_ip") {
		t.Error("strict security group should restrict SSH to admin IP")
	}
	basic := NewGenerator(Config{Provider: "aws", Security: "Basic Firewall"}).SecurityBlock()
	if !strings.Contains(basic, `from_port   = 80`) {
		t.Error("basic security group should open HTTP")
	}
	if strings.Contains(basic, "var.admin_ip") {
		t.Error("basic security group should not reference admin IP")
	}
}

func TestComputeBlock(t *testing.T) {
	ubuntu := NewGenerator(Config{Provider: "aws", OperatingSystem: "Ubuntu", InstanceType: "t3.small"}).ComputeBlock()
	if !strings.Contains(ubuntu, `data "aws_ami" "ubuntu"`) {
		t.Error("ubuntu compute block missing AMI data source")
	}
	if !strings.Contains(ubuntu, `instance_type          = "t3.small"`) {
		t.Error("instance type not substituted")
	}

	windows := NewGenerator(Config{Provider: "aws", OperatingSystem: "Windows"}).ComputeBlock()
	if !strings.Contains(windows, "data.aws_ami.windows.id") {
		t.Error("windows compute block should reference windows AMI")
	}
	if strings.Contains(windows, `data "aws_ami" "ubuntu"`) {
		t.Error("windows compute block should not emit ubuntu data source")
	}

	azure := NewGenerator(Config{Provider: "azure", InstanceType: "Standard_B2s"}).ComputeBlock()
	if !strings.Contains(azure, `size                = "Standard_B2s"`) {
		t.Error("azure VM size not substituted")
	}

	gcp := NewGenerator(Config{Provider: "gcp", InstanceType: "e2-medium"}).ComputeBlock()
	if !strings.Contains(gcp, `machine_type = "e2-medium"`) {
		t.Error("gcp machine type not substituted")
	}
}

func TestDatabaseBlock(t *testing.T) {
	mysql := NewGenerator(Config{Provider: "aws", DatabaseEngine: "mysql", StorageGB: 100}).DatabaseBlock()
	if !strings.Contains(mysql, `engine                 = "mysql"`) {
		t.Error("mysql engine not substituted")
	}
	if !strings.Contains(mysql, "allocated_storage      = 100") {
		t.Error("storage size not substituted")
	}

	mongo := NewGenerator(Config{Provider: "aws", DatabaseEngine: "mongodb"}).DatabaseBlock()
	if !strings.Contains(mongo, "not natively supported") {
		t.Errorf("mongodb on RDS should degrade to a comment, got %q", mongo)
	}

	none := NewGenerator(Config{Provider: "aws", DatabaseEngine: ""}).DatabaseBlock()
	if !strings.Contains(none, "No database requested") {
		t.Errorf("empty engine should skip the database, got %q", none)
	}

	azurePg := NewGenerator(Config{Provider: "azure", DatabaseEngine: "postgres", StorageGB: 50}).DatabaseBlock()
	if !strings.Contains(azurePg, "azurerm_postgresql_server") {
		t.Error("azure postgres server missing")
	}
	if !strings.Contains(azurePg, "storage_mb = 51200") {
		t.Error("azure storage should be converted to MB")
	}

	gcpPg := NewGenerator(Config{Provider: "gcp", DatabaseEngine: "postgres"}).DatabaseBlock()
	if !strings.Contains(gcpPg, "POSTGRES_15") {
		t.Error("gcp postgres version missing")
	}
}

func TestMonitoringBlock(t *testing.T) {
	disabled := NewGenerator(Config{Provider: "aws", Monitoring: "Disable Monitoring"}).MonitoringBlock()
	if !strings.Contains(disabled, "disabled by user choice") {
		t.Errorf("disabled monitoring = %q", disabled)
	}

	enabled := NewGenerator(Config{Provider: "aws", Monitoring: "Enable Monitoring & Alerts"}).MonitoringBlock()
	if !strings.Contains(enabled, "aws_cloudwatch_metric_alarm") {
		t.Error("enabled monitoring missing cloudwatch alarm")
	}
}

func TestVariables(t *testing.T) {
	aws := NewGenerator(Config{Provider: "aws", Region: "eu-west-1"}).Variables()
	if !strings.Contains(aws, `default     = "eu-west-1"`) {
		t.Error("region default not substituted")
	}
	if strings.Contains(aws, "resource_group_name") || strings.Contains(aws, "project_id") {
		t.Error("aws variables should not include azure/gcp extras")
	}

	if vars := NewGenerator(Config{Provider: "azure"}).Variables(); !strings.Contains(vars, "resource_group_name") {
		t.Error("azure variables missing resource_group_name")
	}
	if vars := NewGenerator(Config{Provider: "gcp"}).Variables(); !strings.Contains(vars, "project_id") {
		t.Error("gcp variables missing project_id")
	}
}

func TestOutputs(t *testing.T) {
	if out := NewGenerator(Config{Provider: "aws"}).Outputs(); !strings.Contains(out, "aws_instance.main.public_ip") {
		t.Error("aws outputs missing public IP")
	}
	if out := NewGenerator(Config{Provider: "azure"}).Outputs(); !strings.Contains(out, "azurerm_linux_virtual_machine.main.id") {
		t.Error("azure outputs missing VM id")
	}
	if out := NewGenerator(Config{Provider: "gcp"}).Outputs(); !strings.Contains(out, "nat_ip") {
		t.Error("gcp outputs missing external IP")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g := NewGenerator(Config{Provider: "aws", DatabaseEngine: "mysql"})

	if err := g.WriteFiles(dir); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	for _, name := range []string{"main.tf", "variables.tf", "outputs.tf"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	main, _ := os.ReadFile(filepath.Join(dir, "main.tf"))
	for _, fragment := range []string{`provider "aws"`, "aws_security_group", "aws_instance", "aws_db_instance"} {
		if !strings.Contains(string(main), fragment) {
			t.Errorf("main.tf missing %s", fragment)
		}
	}
}

func TestOutputDir(t *testing.T) {
	if got := OutputDir("custom"); got != "custom" {
		t.Errorf("explicit dir = %q", got)
	}
	if got := OutputDir(""); got != "terraform" {
		t.Errorf("fallback dir = %q, want terraform", got)
	}
}
