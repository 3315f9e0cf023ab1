// Package terraform renders Terraform configuration text from a collected
// provisioning configuration. Output is plain HCL strings assembled from
// per-provider templates; nothing here talks to a cloud API.
package terraform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the provisioning answers collected from intent detection and
// the wizard. Zero values fall back to the defaults applied by NewGenerator.
type Config struct {
	Provider        string // aws, azure or gcp
	Region          string
	InstanceType    string
	OperatingSystem string // Ubuntu, Windows, Amazon Linux
	DatabaseEngine  string // mysql, postgres, mongodb; "" skips the database
	StorageGB       int
	Networking      string // Default VPC, Custom VPC with Subnet, Private Network Only
	Security        string // Basic Firewall, Security Group (Strict Rules), Custom IAM Policy
	Monitoring      string // Enable Monitoring & Alerts, Disable Monitoring
}

// Generator renders main.tf, variables.tf and outputs.tf for one Config.
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	if cfg.Provider == "" {
		cfg.Provider = "aws"
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion(cfg.Provider)
	}
	if cfg.InstanceType == "" {
		cfg.InstanceType = defaultInstanceType(cfg.Provider)
	}
	if cfg.OperatingSystem == "" {
		cfg.OperatingSystem = "Ubuntu"
	}
	if cfg.StorageGB <= 0 {
		cfg.StorageGB = 20
	}
	if cfg.Networking == "" {
		cfg.Networking = "Custom VPC with Subnet"
	}
	if cfg.Security == "" {
		cfg.Security = "Basic Firewall"
	}
	if cfg.Monitoring == "" {
		cfg.Monitoring = "Disable Monitoring"
	}
	return &Generator{cfg: cfg}
}

func defaultRegion(provider string) string {
	switch provider {
	case "azure":
		return "eastus"
	case "gcp":
		return "us-central1"
	default:
		return "us-east-1"
	}
}

func defaultInstanceType(provider string) string {
	switch provider {
	case "azure":
		return "Standard_B1s"
	case "gcp":
		return "e2-micro"
	default:
		return "t2.micro"
	}
}

// Config returns the effective configuration after defaulting.
func (g *Generator) Config() Config {
	return g.cfg
}

// MainTF assembles the full main.tf content in block order: provider,
// networking, security, compute, database, monitoring.
func (g *Generator) MainTF() string {
	var b strings.Builder
	b.WriteString(g.ProviderBlock())
	b.WriteString(g.NetworkingBlock())
	b.WriteString(g.SecurityBlock())
	b.WriteString(g.ComputeBlock())
	b.WriteString(g.DatabaseBlock())
	b.WriteString(g.MonitoringBlock())
	return b.String()
}

func (g *Generator) ProviderBlock() string {
	switch g.cfg.Provider {
	case "azure":
		return `
terraform {
  required_version = ">= 1.0"
  required_providers {
    azurerm = {
      source  = "hashicorp/azurerm"
      version = "~> 3.0"
    }
  }
}

provider "azurerm" {
  features {}
}
`
	case "gcp":
		return `
terraform {
  required_version = ">= 1.0"
  required_providers {
    google = {
      source  = "hashicorp/google"
      version = "~> 5.0"
    }
  }
}

provider "google" {
  project = var.project_id
  region  = var.region
}
`
	default:
		return `
terraform {
  required_version = ">= 1.0"
  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = "~> 5.0"
    }
  }
}

provider "aws" {
  region = var.region
}
`
	}
}

func (g *Generator) customVPC() bool {
	return strings.Contains(g.cfg.Networking, "Custom VPC")
}

func (g *Generator) NetworkingBlock() string {
	switch g.cfg.Provider {
	case "aws":
		if !g.customVPC() {
			return "# Using default VPC\n"
		}
		return `
# VPC Configuration
resource "aws_vpc" "main" {
  cidr_block           = var.vpc_cidr
  enable_dns_hostnames = true
  enable_dns_support   = true

  tags = {
    Name = "main-vpc"
  }
}

resource "aws_subnet" "public" {
  vpc_id                  = aws_vpc.main.id
  cidr_block              = var.subnet_cidr
  map_public_ip_on_launch = true

  tags = {
    Name = "public-subnet"
  }
}

resource "aws_internet_gateway" "main" {
  vpc_id = aws_vpc.main.id

  tags = {
    Name = "main-igw"
  }
}

resource "aws_route_table" "public" {
  vpc_id = aws_vpc.main.id

  route {
    cidr_block = "0.0.0.0/0"
    gateway_id = aws_internet_gateway.main.id
  }

  tags = {
    Name = "public-rt"
  }
}

resource "aws_route_table_association" "public" {
  subnet_id      = aws_subnet.public.id
  route_table_id = aws_route_table.public.id
}
`
	case "azure":
		if !g.customVPC() {
			return `
resource "azurerm_resource_group" "main" {
  name     = var.resource_group_name
  location = var.region
}
`
		}
		return `
resource "azurerm_resource_group" "main" {
  name     = var.resource_group_name
  location = var.region
}

resource "azurerm_virtual_network" "main" {
  name                = "main-vnet"
  address_space       = [var.vpc_cidr]
  location            = azurerm_resource_group.main.location
  resource_group_name = azurerm_resource_group.main.name
}

resource "azurerm_subnet" "main" {
  name                 = "main-subnet"
  resource_group_name  = azurerm_resource_group.main.name
  virtual_network_name = azurerm_virtual_network.main.name
  address_prefixes     = [var.subnet_cidr]
}
`
	case "gcp":
		if !g.customVPC() {
			return "# Using default network\n"
		}
		return `
resource "google_compute_network" "main" {
  name                    = "main-network"
  auto_create_subnetworks = false
}

resource "google_compute_subnetwork" "main" {
  name          = "main-subnet"
  ip_cidr_range = var.subnet_cidr
  region        = var.region
  network       = google_compute_network.main.id
}
`
	}
	return ""
}

func (g *Generator) SecurityBlock() string {
	switch g.cfg.Provider {
	case "aws":
		if strings.Contains(g.cfg.Security, "Strict") {
			return `
resource "aws_security_group" "main" {
  name        = "main-sg"
  description = "Strict security group with limited access"
  vpc_id      = aws_vpc.main.id

  ingress {
    description = "SSH from specific IP"
    from_port   = 22
    to_port     = 22
    protocol    = "tcp"
    cidr_blocks = [var.admin_ip]
  }

  ingress {
    description = "HTTPS"
    from_port   = 443
    to_port     = 443
    protocol    = "tcp"
    cidr_blocks = ["0.0.0.0/0"]
  }

  egress {
    from_port   = 0
    to_port     = 0
    protocol    = "-1"
    cidr_blocks = ["0.0.0.0/0"]
  }

  tags = {
    Name = "main-sg"
  }
}
`
		}
		return `
resource "aws_security_group" "main" {
  name        = "main-sg"
  description = "Basic security group"
  vpc_id      = aws_vpc.main.id

  ingress {
    description = "SSH"
    from_port   = 22
    to_port     = 22
    protocol    = "tcp"
    cidr_blocks = ["0.0.0.0/0"]
  }

  ingress {
    description = "HTTP"
    from_port   = 80
    to_port     = 80
    protocol    = "tcp"
    cidr_blocks = ["0.0.0.0/0"]
  }

  egress {
    from_port   = 0
    to_port     = 0
    protocol    = "-1"
    cidr_blocks = ["0.0.0.0/0"]
  }

  tags = {
    Name = "main-sg"
  }
}
`
	case "azure":
		return `
resource "azurerm_network_security_group" "main" {
  name                = "main-nsg"
  location            = azurerm_resource_group.main.location
  resource_group_name = azurerm_resource_group.main.name

  security_rule {
    name                       = "SSH"
    priority                   = 1001
    direction                  = "Inbound"
    access                     = "Allow"
    protocol                   = "Tcp"
    source_port_range          = "*"
    destination_port_range     = "22"
    source_address_prefix      = "*"
    destination_address_prefix = "*"
  }
}
`
	case "gcp":
		return `
resource "google_compute_firewall" "ssh" {
  name    = "allow-ssh"
  network = google_compute_network.main.name

  allow {
    protocol = "tcp"
    ports    = ["22"]
  }

  source_ranges = ["0.0.0.0/0"]
}
`
	}
	return ""
}

var awsAMIRefs = map[string]string{
	"Ubuntu":       "data.aws_ami.ubuntu.id",
	"Amazon Linux": "data.aws_ami.amazon_linux.id",
	"Windows":      "data.aws_ami.windows.id",
}

func (g *Generator) ComputeBlock() string {
	switch g.cfg.Provider {
	case "aws":
		amiDataSource := ""
		if g.cfg.OperatingSystem == "Ubuntu" {
			amiDataSource = `
data "aws_ami" "ubuntu" {
  most_recent = true
  owners      = ["099720109477"] # Canonical

  filter {
    name   = "name"
    values = ["ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-*"]
  }
}
`
		}
		amiRef, ok := awsAMIRefs[g.cfg.OperatingSystem]
		if !ok {
			amiRef = awsAMIRefs["Ubuntu"]
		}
		return amiDataSource + fmt.Sprintf(`
resource "aws_instance" "main" {
  ami                    = %s
  instance_type          = "%s"
  subnet_id              = aws_subnet.public.id
  vpc_security_group_ids = [aws_security_group.main.id]

  tags = {
    Name = "main-server"
    OS   = "%s"
  }
}
`, amiRef, g.cfg.InstanceType, g.cfg.OperatingSystem)
	case "azure":
		return fmt.Sprintf(`
resource "azurerm_network_interface" "main" {
  name                = "main-nic"
  location            = azurerm_resource_group.main.location
  resource_group_name = azurerm_resource_group.main.name

  ip_configuration {
    name                          = "internal"
    subnet_id                     = azurerm_subnet.main.id
    private_ip_address_allocation = "Dynamic"
  }
}

resource "azurerm_linux_virtual_machine" "main" {
  name                = "main-vm"
  resource_group_name = azurerm_resource_group.main.name
  location            = azurerm_resource_group.main.location
  size                = "%s"
  admin_username      = "adminuser"

  network_interface_ids = [
    azurerm_network_interface.main.id,
  ]

  admin_ssh_key {
    username   = "adminuser"
    public_key = file("~/.ssh/id_rsa.pub")
  }

  os_disk {
    caching              = "ReadWrite"
    storage_account_type = "Standard_LRS"
  }

  source_image_reference {
    publisher = "Canonical"
    offer     = "0001-com-ubuntu-server-jammy"
    sku       = "22_04-lts"
    version   = "latest"
  }
}
`, g.cfg.InstanceType)
	case "gcp":
		return fmt.Sprintf(`
resource "google_compute_instance" "main" {
  name         = "main-instance"
  machine_type = "%s"
  zone         = "${var.region}-a"

  boot_disk {
    initialize_params {
      image = "ubuntu-os-cloud/ubuntu-2204-lts"
    }
  }

  network_interface {
    subnetwork = google_compute_subnetwork.main.id

    access_config {
      // Ephemeral public IP
    }
  }
}
`, g.cfg.InstanceType)
	}
	return ""
}

func (g *Generator) DatabaseBlock() string {
	engine := g.cfg.DatabaseEngine
	if engine == "" {
		return "# No database requested\n"
	}

	switch g.cfg.Provider {
	case "aws":
		versions := map[string]string{"mysql": "8.0", "postgres": "15.3"}
		version, ok := versions[engine]
		if !ok {
			return "# MongoDB not natively supported in AWS RDS\n"
		}
		return fmt.Sprintf(`
resource "aws_db_subnet_group" "main" {
  name       = "main-db-subnet"
  subnet_ids = [aws_subnet.public.id]
}

resource "aws_db_instance" "main" {
  identifier             = "main-database"
  engine                 = "%s"
  engine_version         = "%s"
  instance_class         = "db.t3.micro"
  allocated_storage      = %d
  storage_type           = "gp2"
  db_name                = "mydb"
  username               = var.db_username
  password               = var.db_password
  db_subnet_group_name   = aws_db_subnet_group.main.name
  vpc_security_group_ids = [aws_security_group.main.id]
  skip_final_snapshot    = true

  tags = {
    Name = "main-db"
  }
}
`, engine, version, g.cfg.StorageGB)
	case "azure":
		switch engine {
		case "mysql":
			return fmt.Sprintf(`
resource "azurerm_mysql_server" "main" {
  name                = "main-mysql-server"
  location            = azurerm_resource_group.main.location
  resource_group_name = azurerm_resource_group.main.name

  administrator_login          = var.db_username
  administrator_login_password = var.db_password

  sku_name   = "B_Gen5_2"
  storage_mb = %d
  version    = "8.0"

  ssl_enforcement_enabled = true
}
`, g.cfg.StorageGB*1024)
		case "postgres":
			return fmt.Sprintf(`
resource "azurerm_postgresql_server" "main" {
  name                = "main-postgresql-server"
  location            = azurerm_resource_group.main.location
  resource_group_name = azurerm_resource_group.main.name

  administrator_login          = var.db_username
  administrator_login_password = var.db_password

  sku_name   = "B_Gen5_2"
  storage_mb = %d
  version    = "11"

  ssl_enforcement_enabled = true
}
`, g.cfg.StorageGB*1024)
		}
		return ""
	case "gcp":
		versions := map[string]string{"mysql": "MYSQL_8_0", "postgres": "POSTGRES_15"}
		version, ok := versions[engine]
		if !ok {
			version = "MYSQL_8_0"
		}
		return fmt.Sprintf(`
resource "google_sql_database_instance" "main" {
  name             = "main-db-instance"
  database_version = "%s"
  region           = var.region

  settings {
    tier = "db-f1-micro"

    ip_configuration {
      ipv4_enabled = true
      authorized_networks {
        value = "0.0.0.0/0"
      }
    }
  }
}

resource "google_sql_user" "main" {
  name     = var.db_username
  instance = google_sql_database_instance.main.name
  password = var.db_password
}
`, version)
	}
	return ""
}

func (g *Generator) MonitoringBlock() string {
	if strings.Contains(g.cfg.Monitoring, "Disable") {
		return "# Monitoring disabled by user choice\n"
	}

	if g.cfg.Provider == "aws" {
		return `
resource "aws_cloudwatch_log_group" "main" {
  name              = "/aws/ec2/main-server"
  retention_in_days = 7
}

resource "aws_cloudwatch_metric_alarm" "cpu" {
  alarm_name          = "main-server-cpu"
  comparison_operator = "GreaterThanThreshold"
  evaluation_periods  = 2
  metric_name         = "CPUUtilization"
  namespace           = "AWS/EC2"
  period              = 300
  statistic           = "Average"
  threshold           = 80
  alarm_description   = "This metric monitors ec2 cpu utilization"

  dimensions = {
    InstanceId = aws_instance.main.id
  }
}
`
	}
	return "# Monitoring configuration\n"
}

func (g *Generator) Variables() string {
	vars := fmt.Sprintf(`
variable "region" {
  description = "Cloud region"
  type        = string
  default     = "%s"
}

variable "vpc_cidr" {
  description = "VPC CIDR block"
  type        = string
  default     = "10.0.0.0/16"
}

variable "subnet_cidr" {
  description = "Subnet CIDR block"
  type        = string
  default     = "10.0.1.0/24"
}

variable "db_username" {
  description = "Database administrator username"
  type        = string
  default     = "admin"
}

variable "db_password" {
  description = "Database administrator password"
  type        = string
  sensitive   = true
}

variable "admin_ip" {
  description = "Admin IP for SSH access"
  type        = string
  default     = "0.0.0.0/0"
}
`, g.cfg.Region)

	if g.cfg.Provider == "azure" {
		vars += `
variable "resource_group_name" {
  description = "Resource group name"
  type        = string
  default     = "main-resources"
}
`
	}
	if g.cfg.Provider == "gcp" {
		vars += `
variable "project_id" {
  description = "GCP Project ID"
  type        = string
}
`
	}
	return vars
}

func (g *Generator) Outputs() string {
	switch g.cfg.Provider {
	case "aws":
		return `
output "instance_id" {
  description = "EC2 instance ID"
  value       = aws_instance.main.id
}

output "instance_public_ip" {
  description = "Public IP address"
  value       = aws_instance.main.public_ip
}

output "database_endpoint" {
  description = "Database endpoint"
  value       = try(aws_db_instance.main.endpoint, "N/A")
}
`
	case "azure":
		return `
output "vm_id" {
  description = "Virtual machine ID"
  value       = azurerm_linux_virtual_machine.main.id
}

output "vm_private_ip" {
  description = "Private IP address"
  value       = azurerm_network_interface.main.private_ip_address
}
`
	case "gcp":
		return `
output "instance_id" {
  description = "Compute instance ID"
  value       = google_compute_instance.main.id
}

output "instance_external_ip" {
  description = "External IP address"
  value       = google_compute_instance.main.network_interface[0].access_config[0].nat_ip
}
`
	}
	return ""
}

// OutputDir resolves the target directory for generated files: explicit
// argument first, then the terraform.output_dir config key, then ./terraform.
func OutputDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if dir := viper.GetString("terraform.output_dir"); dir != "" {
		return dir
	}
	return "terraform"
}

// WriteFiles renders main.tf, variables.tf and outputs.tf into dir,
// creating it if needed.
func (g *Generator) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	files := map[string]string{
		"main.tf":      g.MainTF(),
		"variables.tf": g.Variables(),
		"outputs.tf":   g.Outputs(),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}
