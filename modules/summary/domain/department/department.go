package department

import "strings"

// Category is a standardized department bucket. The serving layer filters and
// groups on these exact strings, so they are part of the data contract.
type Category string

const (
	SalesPartnerships     Category = "Sales & Partnerships"
	TicketingOperations   Category = "Ticketing & Operations"
	MarketingComms        Category = "Marketing & Communications"
	FanExperienceEvents   Category = "Fan Experience & Events"
	StadiumOperations     Category = "Stadium Operations & Facilities"
	FinanceAdministration Category = "Finance & Administration"
	TechnologyAnalytics   Category = "Technology & Analytics"
	BroadcastingMedia     Category = "Broadcasting & Media"
	ExecutiveLeadership   Category = "Executive Leadership"
	Other                 Category = "Other"
)

type rule struct {
	category Category
	keywords []string
}

// Table order is a tie-break: the first category whose keyword matches wins.
// Reordering entries changes classification results and breaks reproducibility
// of refreshed summaries, so the sequence is fixed.
var rules = []rule{
	{SalesPartnerships, []string{
		"sales", "partnership", "sponsor", "corporate", "revenue", "account executive",
		"business development", "commercial", "membership", "season ticket", "premium sales",
		"corporate partnership", "sponsorship", "account manager", "client acquisition",
		"premium partnerships", "partnership activation", "partnership sales",
		"corporate partnerships", "ticket sales & service", "sales and service",
		"ticket sales", "client relations & retention", "corporate sales & business development",
		"client services",
	}},
	{TicketingOperations, []string{
		"ticket", "customer service", "box office", "guest services", "hospitality",
		"customer experience", "membership services", "season ticket service",
		"ticket sales & service", "ticket sales & services", "ticket sales & operations",
		"ticket sales, service & operations", "guest services & stadium operations",
		"ticket operations", "ticket sales, services, and operations",
	}},
	{MarketingComms, []string{
		"marketing", "communication", "brand", "content", "social media", "public relations",
		"pr", "digital", "creative", "advertising", "media relations", "community relations",
		"graphic designer", "producer", "social media coordinator", "videographer", "photographer",
		"marketing & media", "communications", "content & digital",
		"marketing & fan engagement", "digital & social media", "public relations & community",
		"marketing, intelligence & broadcasting", "marketing & community impact", "media & content",
		"marketing & creative", "digital media", "digital media and content production",
		"marketing and brand management",
	}},
	{FanExperienceEvents, []string{
		"fan engagement", "fan experience", "event", "game day", "entertainment",
		"community", "outreach", "promotions", "activation", "fan services", "game presentation",
		"game presentation & live production",
		"events & game operations", "event management & hospitality", "community development",
		"community impact", "community & youth programs",
	}},
	{StadiumOperations, []string{
		"operations", "facility", "maintenance", "security", "logistics", "stadium",
		"arena", "venue", "game operations", "facilities", "equipment", "grounds",
		"building", "facilities operations",
		"stadium operations", "facility operations",
		"maintenance & grounds", "venue operations",
	}},
	{FinanceAdministration, []string{
		"finance", "accounting", "controller", "financial", "admin", "hr", "human resources",
		"payroll", "budget", "analyst", "coordinator", "assistant", "accountant", "treasurer",
		"cfo", "chief financial", "people", "culture", "inclusion", "legal", "counsel", "attorney",
		"executive", "people, culture & inclusion",
		"executive office", "people & culture", "finance & accounting", "finance and accounting",
		"people, culture, & inclusion", "human resources/business operations", "strategy",
	}},
	{TechnologyAnalytics, []string{
		"technology", "it", "data", "analytics", "digital", "systems", "tech",
		"information technology", "data analyst", "software", "football analytics",
		"application developer", "engineer", "developer", "audio visual", "broadcast systems",
		"business analytics and data strategy", "business & football operations",
	}},
	{BroadcastingMedia, []string{
		"broadcast", "media", "radio", "television", "tv", "production", "commentary",
		"announcer", "digital media", "audio", "video", "media asset",
		"play-by-play", "radio network",
		"ravens media", "broadcasting", "media & content",
	}},
}

var executiveTokens = []string{"ceo", "president", "owner", "chairman", "chief"}

// Classify maps a job title plus the role's free-text department to exactly one
// category. A blank input always resolves to Other; a miss is not an error.
func Classify(jobTitle, dept string) Category {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	rawDept := strings.ToLower(strings.TrimSpace(dept))
	if title == "" && rawDept == "" {
		return Other
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(title, kw) || strings.Contains(rawDept, kw) {
				return r.category
			}
		}
	}

	for _, token := range executiveTokens {
		if strings.Contains(title, token) {
			return ExecutiveLeadership
		}
	}

	return Other
}

// Categories lists every category in classification order, catch-alls last.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+2)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, ExecutiveLeadership, Other)
}
