// internal/synthesis/refine.go
package synthesis

import (
	"math/rand"

	"synthgen/internal/dataset"
)

// Refined-descriptor vocabularies. The coarse tone picks the distribution
// shape; the refined descriptor is what prompts embed and records carry,
// so two positive interactions still read differently.

var interactionTones = map[dataset.Tone][]string{
	dataset.TonePositive: {
		"appreciative", "enthusiastic", "satisfied", "impressed", "thankful", "delighted",
		"loyal", "complimentary", "grateful", "optimistic", "pleased", "happy", "thrilled",
	},
	dataset.ToneNegative: {
		"frustrated", "disappointed", "concerned", "irritated", "confused", "dissatisfied",
		"angry", "annoyed", "upset", "demanding", "impatient", "skeptical", "discouraged",
	},
	dataset.ToneNeutral: {
		"informative", "curious", "inquiring", "constructive", "analytical", "practical",
		"matter-of-fact", "professional", "straightforward", "detailed", "inquisitive", "patient",
	},
}

var reviewTones = map[dataset.Tone][]string{
	dataset.TonePositive: {
		"enthusiastic", "satisfied", "impressed", "excited", "grateful", "delighted",
		"thrilled", "amazed", "pleased", "appreciative", "supportive", "content", "approving",
	},
	dataset.ToneNegative: {
		"disappointed", "frustrated", "annoyed", "unhappy", "regretful", "critical",
		"dissatisfied", "upset", "angry", "disillusioned", "skeptical", "dubious", "concerned",
	},
	dataset.ToneNeutral: {
		"balanced", "objective", "analytical", "factual", "thoughtful", "moderate",
		"fair", "unbiased", "honest", "practical", "realistic", "reasonable", "mixed",
	},
}

var ticketSubcategories = map[dataset.TicketCategory][]string{
	dataset.CategoryTechnical: {
		"software-bug", "installation-issue", "performance-problem", "compatibility", "error-message", "crash",
		"data-corruption", "sync-failure", "connection-issue", "timeout", "memory-leak", "version-conflict",
		"resource-exhaustion", "security-vulnerability", "api-error", "authentication-failure",
	},
	dataset.CategoryBilling: {
		"payment-failed", "overcharge", "refund-request", "subscription-issue", "invoice-question", "discount-inquiry",
		"auto-renewal", "upgrade-pricing", "downgrade-request", "payment-method-update", "tax-exemption",
		"promotional-code", "pricing-discrepancy", "cancellation-fee", "billing-cycle-change",
	},
	dataset.CategoryAccount: {
		"login-problem", "access-denied", "profile-update", "password-reset", "account-migration", "permissions",
		"two-factor-authentication", "account-verification", "email-update", "inactive-account", "account-merge",
		"user-role-change", "deletion-request", "privacy-settings", "notification-preferences",
	},
	dataset.CategoryFeatureRequest: {
		"new-functionality", "integration-request", "usability-enhancement", "performance-improvement", "UI-suggestion",
		"mobile-adaptation", "automation-capability", "reporting-enhancement", "workflow-optimization",
		"accessibility-improvement", "localization-request", "security-enhancement", "data-export",
	},
}

// refineTone picks a stream-specific refined descriptor for the coarse
// tone. An unknown tone falls back to the tone itself.
func refineTone(rng *rand.Rand, stream dataset.StreamKind, tone dataset.Tone) string {
	var vocab []string
	switch stream {
	case dataset.StreamInteractions:
		vocab = interactionTones[tone]
	case dataset.StreamReviews:
		vocab = reviewTones[tone]
	}
	if len(vocab) == 0 {
		return string(tone)
	}
	return vocab[rng.Intn(len(vocab))]
}

// refineCategory picks a sub-category for the coarse ticket category.
func refineCategory(rng *rand.Rand, category dataset.TicketCategory) string {
	vocab := ticketSubcategories[category]
	if len(vocab) == 0 {
		return string(category)
	}
	return vocab[rng.Intn(len(vocab))]
}
