package intent

var defaultCategories = []Category{
	{
		Name: "networking",
		Keywords: []string{"vpc", "vnet", "network", "subnet", "gateway", "load balancer",
			"alb", "nlb", "vpn", "dns", "route", "peering"},
		CloudResources: map[string][]string{
			"aws": {"vpc", "subnet", "internet_gateway", "nat_gateway", "route_table",
				"elastic_load_balancer", "application_load_balancer"},
			"azure": {"virtual_network", "subnet", "vpn_gateway", "load_balancer"},
			"gcp": {"compute_network", "compute_subnetwork", "compute_vpn_gateway",
				"compute_forwarding_rule"},
		},
	},
	{
		Name: "compute",
		Keywords: []string{"server", "instance", "ec2", "vm", "virtual machine", "compute",
			"container", "auto scaling", "asg", "vmss", "small", "medium", "large"},
		CloudResources: map[string][]string{
			"aws": {"ec2_instance", "autoscaling_group", "launch_template"},
			"azure": {"linux_virtual_machine", "windows_virtual_machine",
				"virtual_machine_scale_set"},
			"gcp": {"compute_instance", "compute_instance_group_manager"},
		},
	},
	{
		Name: "database",
		Keywords: []string{"database", "db", "rds", "sql", "mysql", "postgres", "postgresql",
			"dynamodb", "cosmosdb", "firestore", "mongodb", "mariadb"},
		CloudResources: map[string][]string{
			"aws": {"db_instance", "dynamodb_table", "rds_cluster"},
			"azure": {"mssql_server", "mysql_server", "postgresql_server",
				"cosmosdb_account"},
			"gcp": {"sql_database_instance", "firestore_database"},
		},
	},
	{
		Name: "storage",
		Keywords: []string{"storage", "bucket", "blob", "s3", "ebs", "disk", "volume",
			"file storage", "object storage"},
		CloudResources: map[string][]string{
			"aws":   {"s3_bucket", "ebs_volume", "efs_file_system"},
			"azure": {"storage_account", "storage_blob", "managed_disk"},
			"gcp":   {"storage_bucket", "compute_disk"},
		},
	},
	{
		Name: "security",
		Keywords: []string{"iam", "role", "policy", "security group", "firewall", "acl",
			"kms", "key vault", "secrets", "certificate", "strict"},
		CloudResources: map[string][]string{
			"aws":   {"iam_role", "iam_policy", "security_group", "kms_key"},
			"azure": {"role_assignment", "key_vault", "network_security_group"},
			"gcp":   {"project_iam_binding", "compute_firewall", "kms_crypto_key"},
		},
	},
	{
		Name: "monitoring",
		Keywords: []string{"monitor", "monitoring", "logs", "alerts", "metrics", "cloudwatch",
			"log analytics", "stackdriver"},
		CloudResources: map[string][]string{
			"aws":   {"cloudwatch_log_group", "cloudwatch_metric_alarm", "sns_topic"},
			"azure": {"monitor_metric_alert", "log_analytics_workspace"},
			"gcp":   {"monitoring_alert_policy", "logging_metric"},
		},
	},
	{
		Name: "container",
		Keywords: []string{"container", "docker", "kubernetes", "k8s", "ecs", "eks", "aks",
			"gke", "fargate", "pod", "deployment"},
		CloudResources: map[string][]string{
			"aws":   {"ecs_cluster", "ecs_service", "eks_cluster"},
			"azure": {"kubernetes_cluster", "container_group"},
			"gcp":   {"container_cluster", "container_node_pool"},
		},
	},
	{
		Name: "serverless",
		Keywords: []string{"lambda", "function", "serverless", "cloud function",
			"azure function"},
		CloudResources: map[string][]string{
			"aws":   {"lambda_function", "api_gateway_rest_api"},
			"azure": {"function_app"},
			"gcp":   {"cloudfunctions_function"},
		},
	},
	{
		Name: "provider",
		Keywords: []string{"aws", "amazon web services", "azure", "microsoft azure",
			"gcp", "google cloud", "google cloud platform"},
	},
	{
		Name: "os",
		Keywords: []string{"ubuntu", "windows", "amazon linux", "centos", "rhel",
			"debian", "fedora"},
	},
}

var defaultActions = []ActionEntry{
	{Kind: ActionCreate, Verbs: []string{"create", "deploy", "launch", "provision", "setup", "set up", "add", "build"}},
	{Kind: ActionDelete, Verbs: []string{"delete", "remove", "destroy", "terminate", "tear down"}},
	{Kind: ActionModify, Verbs: []string{"modify", "update", "change", "edit", "configure"}},
	{Kind: ActionQuery, Verbs: []string{"show", "list", "describe", "get", "what", "which"}},
}

// Matched against single whitespace tokens preceding a keyword occurrence.
var negationPatterns = []string{
	`\b(no|not|without|don't|dont|never|exclude)\b`,
	`\b(except|excluding)\b`,
}

func cloneCategories(src []Category) []Category {
	dst := make([]Category, len(src))
	for i, cat := range src {
		keywords := make([]string, len(cat.Keywords))
		copy(keywords, cat.Keywords)

		var resources map[string][]string
		if cat.CloudResources != nil {
			resources = make(map[string][]string, len(cat.CloudResources))
			for provider, names := range cat.CloudResources {
				copied := make([]string, len(names))
				copy(copied, names)
				resources[provider] = copied
			}
		}

		dst[i] = Category{Name: cat.Name, Keywords: keywords, CloudResources: resources}
	}
	return dst
}

func cloneActions(src []ActionEntry) []ActionEntry {
	dst := make([]ActionEntry, len(src))
	for i, entry := range src {
		verbs := make([]string, len(entry.Verbs))
		copy(verbs, entry.Verbs)
		dst[i] = ActionEntry{Kind: entry.Kind, Verbs: verbs}
	}
	return dst
}

// DefaultCategories returns a copy of the built-in category table.
func DefaultCategories() []Category {
	return cloneCategories(defaultCategories)
}

// DefaultActions returns a copy of the built-in action lexicon.
func DefaultActions() []ActionEntry {
	return cloneActions(defaultActions)
}
