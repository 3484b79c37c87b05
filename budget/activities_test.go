package budget_test

import (
	"testing"

	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestMockActivities(t *testing.T) {
	events := []budget.Event{
		{ID: 1, Name: "Harambee", Venue: utils.Ptr("KICC"), TotalBudget: 150000, IsFunded: true},
		{ID: 2, Name: "Wedding", TotalBudget: 80000},
		{ID: 3, Name: "Graduation"},
	}
	pledges := []budget.Pledge{
		{ID: 10, Event: utils.Ptr(int64(1)), Name: "Wanjiru", AmountPledged: 2500, IsFulfilled: true},
		{ID: 11, Event: utils.Ptr(int64(2)), Name: "Otieno", AmountPledged: 1000},
		{ID: 12, Event: utils.Ptr(int64(99)), Name: "Achieng", AmountPledged: 0},
		{ID: 13, Event: utils.Ptr(int64(1)), Name: "Kamau", AmountPledged: 500},
	}

	activities := budget.MockActivities(pledges, events)
	require.Len(t, activities, 5)

	require.Equal(t, budget.MockActivity{
		ID:          "pledge-10",
		Type:        budget.ActivityPledge,
		Title:       "Payment received",
		Description: "Wanjiru paid for Harambee",
		Amount:      "KSh 2,500",
		Time:        "1 hour ago",
		Status:      "success",
	}, activities[0])

	require.Equal(t, "New pledge", activities[1].Title)
	require.Equal(t, "Otieno pledged for Wedding", activities[1].Description)
	require.Equal(t, "2 hours ago", activities[1].Time)
	require.Equal(t, "warning", activities[1].Status)

	require.Equal(t, "Achieng pledged for Event", activities[2].Description, "unknown events fall back to a generic name")
	require.Equal(t, "KSh 0", activities[2].Amount)

	require.Equal(t, budget.MockActivity{
		ID:          "event-1",
		Type:        budget.ActivityEvent,
		Title:       "Event created",
		Description: "Harambee scheduled at KICC",
		Amount:      "KSh 150,000",
		Time:        "4 hours ago",
		Status:      "success",
	}, activities[3])
	require.Equal(t, "Wedding scheduled at Venue not specified", activities[4].Description)
	require.Equal(t, "5 hours ago", activities[4].Time)
	require.Equal(t, "neutral", activities[4].Status)
}

func TestMockActivities_Empty(t *testing.T) {
	require.Empty(t, budget.MockActivities(nil, nil))

	activities := budget.MockActivities(nil, []budget.Event{{ID: 1, Name: "Harambee"}})
	require.Len(t, activities, 1)
	require.Equal(t, "4 hours ago", activities[0].Time)
}
