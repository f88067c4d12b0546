package analyst

import "strings"

// IdeaProfile holds the variables inferred from a raw idea description.
// The fallback templates substitute these directly, and external prompts
// receive them as additional context.
type IdeaProfile struct {
	Category   string
	Features   []string
	Complexity string
}

type categoryRule struct {
	label    string
	keywords []string
}

// Rule order matters: the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{"E-commerce", []string{"shop", "store", "sell"}},
	{"Social Media", []string{"social", "chat", "community"}},
	{"SaaS / Subscription", []string{"saas", "platform", "subscription"}},
	{"Booking System", []string{"booking", "book", "appointment", "reservation"}},
}

const defaultCategory = "General Web Application"

// Every project gets the baseline account features regardless of domain.
var baselineFeatures = []string{
	"Registration",
	"Login",
	"Logout",
	"Forgot Password",
	"Profile Management",
}

var categoryFeatures = map[string][]string{
	"E-commerce":          {"Product Listing", "Shopping Cart", "Checkout", "Order Management", "Payment Integration"},
	"Social Media":        {"News Feed", "Messaging", "Notifications", "Friend System"},
	"SaaS / Subscription": {"Subscription Plans", "Billing", "Team Management", "Usage Analytics"},
	"Booking System":      {"Calendar View", "Availability Search", "Booking Management", "Payment Integration"},
	defaultCategory:       {"Dashboard", "Notifications", "Reporting"},
}

// Profile derives category, feature list and complexity tier from the idea
// text. The output is a pure function of the input.
func Profile(idea string) IdeaProfile {
	lower := strings.ToLower(idea)

	category := defaultCategory
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			category = rule.label
			break
		}
	}

	features := append([]string{}, baselineFeatures...)
	features = append(features, categoryFeatures[category]...)
	if strings.Contains(lower, "admin") {
		features = append(features, "Admin Dashboard", "User Management")
	}
	if strings.Contains(lower, "search") {
		features = append(features, "Advanced Search")
	}
	features = dedupe(features)

	return IdeaProfile{
		Category:   category,
		Features:   features,
		Complexity: ComplexityTier(len(features)),
	}
}

// ComplexityTier classifies a feature count into a complexity label.
func ComplexityTier(count int) string {
	switch {
	case count > 15:
		return "Enterprise"
	case count > 10:
		return "Complex"
	case count > 5:
		return "Moderate"
	default:
		return "Simple"
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
