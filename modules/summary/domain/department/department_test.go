package department

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		jobTitle string
		dept     string
		want     Category
	}{
		{"sales title", "Corporate Partnerships Sales Manager", "", SalesPartnerships},
		{"keyword from dept only", "Specialist", "Box Office", TicketingOperations},
		{"marketing", "Social Media Coordinator", "Marketing", MarketingComms},
		{"fan experience", "Fan Engagement Coordinator", "", FanExperienceEvents},
		{"stadium ops", "Grounds Crew Member", "Stadium Operations", StadiumOperations},
		{"finance", "Staff Accountant", "Finance & Accounting", FinanceAdministration},
		{"technology", "Data Analytics Manager", "", TechnologyAnalytics},
		{"broadcast", "Play-by-Play Announcer", "", BroadcastingMedia},
		{"executive token fallback", "Owner", "", ExecutiveLeadership},
		{"chairman fallback", "Chairman", "", ExecutiveLeadership},
		{"ceo fallback", "CEO", "", ExecutiveLeadership},
		{"empty inputs", "", "", Other},
		{"whitespace only", "   ", "  ", Other},
		{"no match", "Mascot", "", Other},
		{"case insensitive", "SEASON TICKET REPRESENTATIVE", "", SalesPartnerships},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.jobTitle, tc.dept))
		})
	}
}

func TestClassify_FirstMatchingCategoryWins(t *testing.T) {
	// "Ticket Sales Representative" matches both the sales and the ticketing
	// keyword sets; the earlier category in the table takes it.
	assert.Equal(t, SalesPartnerships, Classify("Ticket Sales Representative", ""))
}

func TestClassify_ExecutiveTokensOnlyAfterKeywordMiss(t *testing.T) {
	// "chief financial" is a finance keyword, so a CFO title never reaches the
	// executive fallback.
	assert.Equal(t, FinanceAdministration, Classify("Chief Financial Officer", ""))
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Corporate Partnerships Sales Manager", "Partnerships")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Classify("Corporate Partnerships Sales Manager", "Partnerships"))
	}
}

func TestCategories_OrderStable(t *testing.T) {
	got := Categories()
	require.Len(t, got, 10)
	assert.Equal(t, SalesPartnerships, got[0])
	assert.Equal(t, ExecutiveLeadership, got[8])
	assert.Equal(t, Other, got[9])
}
