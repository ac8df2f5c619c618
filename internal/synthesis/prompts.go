// internal/synthesis/prompts.go
package synthesis

import (
	"fmt"
	"math/rand"
	"strings"

	"synthgen/internal/dataset"
	"synthgen/internal/genai"
)

// Curated vocabularies embedded into generative prompts. Deliberately
// smaller than the record-level tag vocabularies so prompts stay short.
var (
	promptContexts = []string{
		"tech startup", "retail store", "financial service", "healthcare provider",
		"educational platform", "mobile app", "subscription service", "e-commerce site",
	}

	promptProducts = []string{
		"software subscription", "hardware device", "mobile application", "API service",
		"data analytics tool", "smart device", "cloud storage", "security solution",
		"DataSync Pro", "CloudGuard 365", "SecureConnect", "AnalyticsMaster", "IntegrateX",
	}

	promptScenarios = []string{
		"after an upgrade", "during onboarding", "while troubleshooting", "regarding billing",
		"about feature requests", "during peak usage", "following system outage",
	}

	customerConcerns = []string{
		"data privacy", "system reliability", "user permissions", "billing cycle",
		"feature limitations", "integration complexity", "performance bottleneck",
		"security vulnerability", "learning curve", "customer support response time",
		"customization options", "compliance requirements", "hidden costs",
		"platform stability", "mobile compatibility", "data export capabilities",
	}

	technicalTerms = []string{
		"API integration", "authentication protocol", "bandwidth utilization", "cache invalidation",
		"data migration", "encryption algorithm", "firewall configuration", "gateway timeout",
		"HTTP response code", "indexing performance", "JavaScript framework", "Kubernetes cluster",
		"load balancer", "microservice architecture", "NoSQL database", "OAuth token",
		"proxy server", "query optimization", "REST endpoint", "SSL certificate",
		"thread management", "UI rendering", "virtual machine", "webhook trigger",
		"XML parsing", "YAML configuration", "zero-downtime deployment",
	}
)

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

// pickSparse draws from list extended by the given number of blank slots,
// so a detail is sometimes omitted from the prompt entirely.
func pickSparse(rng *rand.Rand, list []string, blanks int) string {
	i := rng.Intn(len(list) + blanks)
	if i >= len(list) {
		return ""
	}
	return list[i]
}

// squeeze collapses whitespace runs to single spaces; blank enrichment
// slots would otherwise leave doubled spaces behind.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// buildPrompt assembles a randomized instruction for the generative
// backend: one of eight shapes per stream, seasoned with enrichment
// details. descriptor is the refined tone (or ticket sub-category).
func buildPrompt(rng *rand.Rand, stream dataset.StreamKind, descriptor string) string {
	orgContext := pick(rng, promptContexts)
	product := pick(rng, promptProducts)
	scenario := pick(rng, promptScenarios)

	var prompt string
	switch stream {
	case dataset.StreamInteractions:
		timePeriod := pick(rng, []string{"recent", "yesterday's", "last week's", "this morning's", ""})
		duration := pick(rng, []string{"brief", "lengthy", "30-minute", "hour-long", "multi-session", ""})
		channel := pick(rng, []string{"phone", "email", "chat", "video call", "in-person", "social media", ""})
		customerDetail := pick(rng, []string{"new", "long-term", "technical", "non-technical", "enterprise", "small business", ""})
		concern := pickSparse(rng, customerConcerns, 4)
		usageDetail := pick(rng, []string{"heavy user", "occasional user", "first-time user", "power user", ""})

		switch rng.Intn(8) {
		case 0:
			prompt = fmt.Sprintf("Write a %s customer service interaction note for a %s %s %s via %s:", descriptor, customerDetail, orgContext, scenario, channel)
		case 1:
			prompt = fmt.Sprintf("Create a detailed %s support interaction summary for a %s customer using our %s who mentioned %s:", descriptor, usageDetail, product, concern)
		case 2:
			prompt = fmt.Sprintf("Draft a %s customer call transcript from %s %s conversation %s with specific details:", descriptor, timePeriod, duration, scenario)
		case 3:
			prompt = fmt.Sprintf("Document a %s %s conversation between our support team and a %s customer who %s:", descriptor, channel, orgContext, scenario)
		case 4:
			prompt = fmt.Sprintf("Prepare a comprehensive %s interaction record for a %s %s client with concerns about %s:", descriptor, customerDetail, orgContext, product)
		case 5:
			prompt = fmt.Sprintf("Summarize a %s %s live chat session with a customer who needed help with %s related to %s:", descriptor, duration, product, concern)
		case 6:
			prompt = fmt.Sprintf("Record a %s %s interaction with a %s exploring our %s features:", descriptor, channel, usageDetail, product)
		case 7:
			prompt = fmt.Sprintf("Create notes from a %s %s follow-up call with a %s customer regarding their previous %s:", descriptor, timePeriod, orgContext, scenario)
		}

	case dataset.StreamReviews:
		usageDuration := pick(rng, []string{"after one week of using", "after a month with", "after 6 months of", "after a year with", ""})
		purchaseReason := pick(rng, []string{"purchased for business use", "bought for personal projects", "selected after comparing alternatives", "upgraded from previous version", ""})
		feature := pick(rng, []string{"automation capabilities", "user interface", "mobile app", "integration options", "reporting tools", "customer support", ""})
		comparison := pick(rng, []string{"compared to competitors", "compared to previous versions", "against similar products", "against my expectations", ""})
		useCase := pick(rng, []string{"for daily operations", "for occasional tasks", "for critical business processes", "for personal productivity", ""})

		switch rng.Intn(8) {
		case 0:
			prompt = fmt.Sprintf("Write a detailed %s product review for a %s from a %s perspective %s it %s:", descriptor, product, orgContext, usageDuration, useCase)
		case 1:
			prompt = fmt.Sprintf("Create a specific %s customer review for our %s with personal experience details, particularly about the %s:", descriptor, product, feature)
		case 2:
			prompt = fmt.Sprintf("Draft a %s user review for a %s mentioning specific features %s:", descriptor, product, comparison)
		case 3:
			prompt = fmt.Sprintf("Compose an authentic %s review from a %s customer who's been using %s for several months %s:", descriptor, orgContext, product, useCase)
		case 4:
			prompt = fmt.Sprintf("Write a %s testimonial highlighting how %s's %s affected a customer's workflow:", descriptor, product, feature)
		case 5:
			prompt = fmt.Sprintf("Generate a %s product rating with specific examples of %s performance %s:", descriptor, product, comparison)
		case 6:
			prompt = fmt.Sprintf("Create a %s comparison review between our %s and competitor alternatives focusing on %s:", descriptor, product, feature)
		case 7:
			prompt = fmt.Sprintf("Draft a detailed %s review by someone who %s focusing on the value-for-money aspect of our %s:", descriptor, purchaseReason, product)
		}

	case dataset.StreamTickets:
		urgency := pick(rng, []string{"urgent", "critical", "moderate", "low-priority", ""})
		reproduction := pick(rng, []string{"consistently reproducible", "intermittent", "only under specific conditions", "random", ""})
		impact := pick(rng, []string{"blocking workflow", "causing delays", "affecting data integrity", "creating user confusion", "reducing performance", ""})
		environment := pick(rng, []string{"production", "development", "testing", "staging", "mobile", "desktop", ""})
		stepsTaken := pick(rng, []string{"after trying basic troubleshooting", "after consulting documentation", "after system restart", "after clearing cache", ""})
		techDetail := pickSparse(rng, technicalTerms, 3)

		switch rng.Intn(8) {
		case 0:
			prompt = fmt.Sprintf("Write a detailed %s customer support ticket about a %s issue with our %s %s in the %s environment:", urgency, descriptor, product, scenario, environment)
		case 1:
			prompt = fmt.Sprintf("Create a specific %s support request from a %s customer with technical details about %s %s:", descriptor, orgContext, techDetail, impact)
		case 2:
			prompt = fmt.Sprintf("Draft a thorough %s customer ticket explaining a %s problem with our %s %s:", descriptor, reproduction, product, stepsTaken)
		case 3:
			prompt = fmt.Sprintf("Document a %s help desk ticket from a %s user unable to complete a task with %s due to an issue %s:", descriptor, orgContext, product, impact)
		case 4:
			prompt = fmt.Sprintf("Write a %s %s bug report submitted by a customer using our %s in an enterprise environment with details about %s:", urgency, descriptor, product, techDetail)
		case 5:
			prompt = fmt.Sprintf("Generate a %s feature request ticket with specific use case examples for our %s related to %s:", descriptor, product, techDetail)
		case 6:
			prompt = fmt.Sprintf("Create a detailed %s troubleshooting ticket where a customer tried several solutions for their %s issue that is %s:", descriptor, product, reproduction)
		case 7:
			prompt = fmt.Sprintf("Compose a %s escalation ticket from a %s customer who has had recurring issues with %s %s:", descriptor, orgContext, product, impact)
		}
	}

	return squeeze(prompt)
}

// sampleParams draws fresh decoding parameters for one generative call.
// The ranges are wide on purpose: variety across items matters more than
// per-item optimality.
func sampleParams(rng *rand.Rand) genai.SampleParams {
	return genai.SampleParams{
		MaxTokens:         160 + rng.Intn(41),
		Temperature:       0.7 + 0.6*rng.Float64(),
		TopP:              0.7 + 0.29*rng.Float64(),
		TopK:              40 + rng.Intn(61),
		RepetitionPenalty: 1.1 + 0.2*rng.Float64(),
	}
}
