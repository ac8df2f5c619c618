// internal/synthesis/banks.go
package synthesis

import (
	"math/rand"

	"synthgen/internal/dataset"
)

// Banks holds the English template banks, keyed by the typed tone and
// ticket-category constants. A lookup that misses lands on the generic
// sentences, never on an empty string.
type Banks struct {
	interactions map[dataset.Tone][]string
	reviews      map[dataset.Tone][]string
	tickets      map[dataset.TicketCategory][]string
	generic      []string
}

// DefaultBanks returns the built-in English banks.
func DefaultBanks() *Banks {
	return &Banks{
		interactions: interactionTemplates,
		reviews:      reviewTemplates,
		tickets:      ticketTemplates,
		generic:      genericTemplates,
	}
}

// Pick selects one template for the item's stream and coarse tone or
// category.
func (b *Banks) Pick(rng *rand.Rand, stream dataset.StreamKind, tone dataset.Tone, category dataset.TicketCategory) string {
	var bank []string
	switch stream {
	case dataset.StreamInteractions:
		bank = b.interactions[tone]
	case dataset.StreamReviews:
		bank = b.reviews[tone]
	case dataset.StreamTickets:
		bank = b.tickets[category]
	}
	if len(bank) == 0 {
		bank = b.generic
	}
	return bank[rng.Intn(len(bank))]
}

var interactionTemplates = map[dataset.Tone][]string{
	dataset.TonePositive: {
		"Customer was pleased with the solution provided. They appreciated the quick response and thoroughness. Will be upgrading their account next month.",
		"Very positive call with customer who praised our new features. They mentioned they've already recommended our product to colleagues.",
		"Customer reached out to express satisfaction with recent changes. They particularly liked the improved user interface and enhanced reporting capabilities.",
		"Great interaction with a happy customer. They praised the reliability of our product and mentioned they're planning to expand usage across their team.",
		"Customer was delighted with the quick resolution to their previous issue. They noted that our support is a key reason why they continue to use our product.",
		"Excellent follow-up call with customer. They complimented the product's reliability and ease of use.",
		"Customer mentioned how impressed they were with the recent updates. They're considering adding more users next quarter.",
		"Very productive call where the customer shared positive feedback about the integration capabilities.",
		"Customer enthusiastically reported their success using our advanced features. They achieved significant time savings.",
		"Proactive check-in call was well received. Customer is very satisfied with the service and had no issues to report.",
	},
	dataset.ToneNegative: {
		"Customer expressed frustration about recurring technical issues. They mentioned considering competitor products if not resolved quickly.",
		"Difficult conversation with customer about billing discrepancies. They were upset about unexpected charges and requested immediate refund.",
		"Customer complained about poor performance and reliability issues. They need urgent resolution or will escalate to management.",
		"Customer was dissatisfied with recent changes to the interface. They found it confusing and less intuitive than the previous version.",
		"Frustrating call with customer reporting data loss issues. They were upset about the lack of warning before maintenance downtime.",
		"Customer called to express disappointment with response time on their support ticket. They expected faster resolution.",
		"Challenging discussion about system downtime. Customer emphasized the business impact and requested compensation.",
		"Customer was unhappy with the quality of documentation. They had difficulty implementing the solution without support.",
		"Call with unsatisfied customer who encountered multiple bugs in the latest release. They're considering downgrading.",
		"Customer voiced concerns about security features. They don't feel confident their data is adequately protected.",
	},
	dataset.ToneNeutral: {
		"Routine check-in with customer. They had some questions about new features which were addressed during the call.",
		"Customer requested information about pricing for additional users. Sent documentation and scheduled follow-up for next week.",
		"Standard onboarding call with new customer. Walked through basic functionality and setup process.",
		"Customer needed help with account settings. Provided step-by-step instructions and confirmed they were able to complete the changes.",
		"Regular maintenance discussion with customer. Reviewed usage patterns and suggested optimization strategies.",
		"Follow-up call to verify implementation. Customer confirms setup is complete but hasn't fully tested all features.",
		"Provided customer with requested API documentation. They will review and get back with specific questions.",
		"Customer inquired about upcoming features. Shared roadmap information and approximate release dates.",
		"Routine account review with customer. Discussed current utilization and potential areas for improvement.",
		"Informational call about new compliance features. Customer will evaluate whether they need to implement them.",
	},
}

var reviewTemplates = map[dataset.Tone][]string{
	dataset.TonePositive: {
		"I'm very satisfied with this product. It works exactly as described and the quality exceeds expectations. The customer service was also excellent when I had questions.",
		"This is an outstanding product that I would highly recommend. Easy to use, great functionality, and worth every penny.",
		"Excellent value for money. The features are comprehensive and the interface is intuitive. Very happy with my purchase.",
		"Five stars! This product has saved me hours of work each week. The automation features are particularly impressive.",
		"Couldn't be happier with my purchase. The setup was quick, performance is reliable, and it integrates well with my existing tools.",
		"Phenomenal product that has transformed our workflow. The learning curve was minimal and the benefits were immediate.",
		"Absolutely worth the investment. This tool has improved our team's productivity by at least 30% since implementation.",
		"Exceptional quality and reliability. In six months of heavy usage, we haven't encountered a single issue or bug.",
		"I've tried many similar products and this one stands out for its thoughtful design and powerful capabilities.",
		"Highly impressed with both the product and support team. They've been responsive and helpful throughout our onboarding.",
		"The best solution we've found after evaluating numerous alternatives. Meets all our requirements perfectly.",
		"Love how user-friendly this product is while still offering advanced features for power users.",
		"Game-changing tool that's become essential to our daily operations. Can't imagine working without it now.",
		"Superior performance compared to competitors. The speed and reliability make a noticeable difference.",
		"Great product with regular updates that actually improve functionality rather than just changing things around.",
	},
	dataset.ToneNegative: {
		"Unfortunately, this product did not meet my expectations. There were quality issues and the functionality was limited compared to what was advertised.",
		"I'm disappointed with this purchase. The product arrived damaged and customer service was slow to respond to my concerns.",
		"Not worth the price. The product is difficult to use and lacks basic features I expected. Would not recommend.",
		"Frustrated with this product. It crashes frequently and loses data, which has caused significant problems for my work.",
		"Poor quality and unreliable. Save your money and look elsewhere for a better alternative.",
		"Regret purchasing this product. The learning curve is steep and the documentation is inadequate for troubleshooting.",
		"Constant performance issues make this tool practically unusable for our team. Support has been unhelpful.",
		"The interface is confusing and counterintuitive. Simple tasks require too many steps to complete.",
		"This product has numerous bugs that haven't been addressed despite multiple updates over several months.",
		"We experienced frequent downtime that impacted our business operations. Moving to a different solution.",
		"The pricing structure is misleading - many essential features require additional paid upgrades.",
		"Security concerns haven't been addressed adequately by the development team despite repeated inquiries.",
		"Poor compatibility with standard tools in our industry. Created more problems than it solved.",
		"Customer support is virtually non-existent. Waited weeks for responses to critical issues.",
		"The product lacks scalability. Works fine for small projects but breaks down with larger datasets.",
	},
	dataset.ToneNeutral: {
		"The product works as expected. Nothing exceptional but does the job adequately. Fair value for the price point.",
		"Decent product with some good features. There's room for improvement but overall it meets basic needs.",
		"Average performance. Has some strengths and some weaknesses. Might work better for others depending on specific needs.",
		"It's okay. Does what it claims to do, though the interface could be more intuitive.",
		"Three stars. Works for basic tasks but lacks some advanced features that would make it exceptional.",
		"Functional but not particularly impressive. Meets minimum requirements for our needs.",
		"Middle-of-the-road solution that works reliably but doesn't stand out from competitors.",
		"Some features are well-designed while others feel incomplete. Regular updates have been gradually improving it.",
		"Acceptable performance for the price. There are better options if you're willing to pay more.",
		"Does what we need, though sometimes in a roundabout way. Documentation could be more comprehensive.",
		"Adequate solution that required some customization to fit our workflow. Support was helpful but slow.",
		"Reasonable choice for small teams. Larger organizations may find it lacks enterprise features.",
		"Mixed feelings about this product. Some departments love it while others find it limiting.",
		"Satisfactory performance overall. Neither disappointing nor particularly impressive.",
		"Basic functionality works well but advanced features aren't as polished as expected.",
	},
}

var ticketTemplates = map[dataset.TicketCategory][]string{
	dataset.CategoryTechnical: {
		"We're experiencing integration failures with the API. The error logs show connection timeouts when trying to process batch transactions.",
		"The dashboard is extremely slow to load and occasionally crashes when generating custom reports. This issue began after the latest update.",
		"Unable to export data in CSV format. The export process initiates but then fails with a generic error message.",
		"The search functionality is not returning accurate results. Specific keywords that should match content are showing zero results.",
		"System is automatically logging users out during active sessions, interrupting work and causing data loss.",
		"Encountering persistent memory leak when running extended analysis jobs. The application becomes increasingly slower until it crashes.",
		"Authentication system intermittently fails, preventing team members from accessing critical features during peak hours.",
		"Real-time data synchronization has stopped working between mobile and desktop applications. Changes aren't propagating correctly.",
		"Custom field configurations don't save properly when they contain special characters or exceed certain length limits.",
		"Notification system sending duplicate alerts and sometimes failing to deliver critical system warnings entirely.",
	},
	dataset.CategoryBilling: {
		"Our account was charged twice for the annual subscription renewal. The duplicate payment needs to be refunded immediately.",
		"The latest invoice includes services we had previously canceled. We need this corrected and a revised invoice issued.",
		"We're being charged at the old rate despite switching to the new pricing tier last month.",
		"There appears to be a discrepancy between our usage metrics and the charges on our bill. We need clarification on how usage is calculated.",
		"We were promised a discount as part of our contract renewal, but it's not reflected in the recent billing statement.",
		"Payment method update failed multiple times on the portal. We've been trying to update our credit card information for two weeks.",
		"Unexpected price increase applied without prior notification. Our procurement department requires advance notice for budget planning.",
		"Tax exemption certificate was submitted last month but hasn't been applied to our account. We're still being charged tax incorrectly.",
		"Subscription auto-renewed despite our explicit request to cancel. Need immediate termination and prorated refund.",
		"Credits for service outage compensation haven't been applied to our account as promised by your support team.",
	},
	dataset.CategoryAccount: {
		"We need to add five new user accounts to our team but are having trouble with the permissions settings.",
		"Our admin account email needs to be updated following personnel changes in our organization.",
		"We're unable to deactivate former employee accounts through the admin dashboard. The deactivation option appears but doesn't save changes.",
		"Need help with setting up single sign-on for our organization to streamline the login process.",
		"Having difficulty managing team access levels. Need guidance on implementing role-based permissions.",
		"Two-factor authentication reset required for executive account after mobile device change. Previous backup codes were lost.",
		"Department restructuring requires bulk reassignment of users to different team hierarchies. Need assistance with the transition.",
		"Account merging request for two separate subscriptions our company maintains. We want to consolidate billing and user management.",
		"Custom domain verification failing despite following all the steps in the documentation. DNS records appear to be correctly configured.",
		"Request for audit logs of all admin actions over the past quarter for compliance review purposes.",
	},
	dataset.CategoryFeatureRequest: {
		"We would like to request an enhancement to the reporting functionality to include custom date ranges and export options.",
		"Our team needs the ability to bulk edit records. Currently making individual changes is time-consuming for large datasets.",
		"Request for enhanced notification settings that allow customization based on event priority and user preferences.",
		"We'd find it valuable to have an API endpoint for accessing historical usage data for integration with our internal analytics tools.",
		"Our team would benefit from having keyboard shortcuts for common actions to improve efficiency.",
		"Would like to see advanced filtering capabilities that allow for multiple conditions and saved filter presets.",
		"Request for white-labeling options so we can customize the interface with our company branding for client-facing portals.",
		"Need granular permission controls at the field level rather than just object-level permissions for sensitive data.",
		"Integration with project management tools like Jira and Asana would significantly improve our workflow.",
		"Enhanced data visualization options, particularly the ability to create custom dashboards with drag-and-drop components.",
	},
}

// genericTemplates catches lookups no bank covers. Deliberately bland so
// they read plausibly for any stream.
var genericTemplates = []string{
	"This matter requires attention. Please review the details and take appropriate action.",
	"I would like to discuss this at your earliest convenience. Several aspects need clarification.",
	"Thank you for your assistance with this situation. The information provided has been helpful.",
}
