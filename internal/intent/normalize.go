package intent

import "strings"

// NormalizeProvider maps the first matched provider keyword to one of the
// canonical tags aws, azure, or gcp. Returns "" when no provider category
// was detected or no alias applies.
func (p *Parser) NormalizeProvider(result Result) string {
	keywords := result.Categories["provider"]
	if len(keywords) == 0 {
		return ""
	}

	keyword := strings.ToLower(keywords[0])
	switch {
	case strings.Contains(keyword, "aws"), strings.Contains(keyword, "amazon"):
		return "aws"
	case strings.Contains(keyword, "azure"), strings.Contains(keyword, "microsoft"):
		return "azure"
	case strings.Contains(keyword, "gcp"), strings.Contains(keyword, "google"):
		return "gcp"
	}
	return ""
}

// ExtractOS returns the display name of the first matched operating-system
// keyword, or "" when none was detected.
func (p *Parser) ExtractOS(result Result) string {
	keywords := result.Categories["os"]
	if len(keywords) == 0 {
		return ""
	}

	switch name := keywords[0]; name {
	case "amazon linux":
		return "Amazon Linux"
	case "rhel":
		return "RHEL"
	default:
		return capitalize(name)
	}
}

// capitalize upper-cases the first byte; table keywords are lowercase ASCII.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
