package budget

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jrsteele09/go-budget-client/internal/utils"
)

const (
	mockPledgeLimit   = 3
	mockEventLimit    = 2
	mockActivityLimit = 5
	currencyPrefix    = "KSh "
)

// MockActivity is a display-ready feed entry synthesized from data already
// fetched, used when the recent-activity endpoint is unavailable.
type MockActivity struct {
	ID          string
	Type        ActivityType
	Title       string
	Description string
	Amount      string
	Time        string
	Status      string // success, warning or neutral
}

// MockActivities builds a feed from the first pledges and events: up to
// three pledges followed by up to two events. Times are placeholders that
// only preserve the ordering.
func MockActivities(pledges []Pledge, events []Event) []MockActivity {
	eventNames := make(map[int64]string, len(events))
	for _, event := range events {
		eventNames[event.ID] = event.Name
	}

	activities := make([]MockActivity, 0, mockActivityLimit)
	for i, pledge := range pledges {
		if i == mockPledgeLimit {
			break
		}
		title, verb, status := "New pledge", "pledged", "warning"
		if pledge.IsFulfilled {
			title, verb, status = "Payment received", "paid", "success"
		}
		eventName := "Event"
		if pledge.Event != nil {
			eventName = utils.FirstNonEmpty(eventNames[*pledge.Event], eventName)
		}
		activities = append(activities, MockActivity{
			ID:          fmt.Sprintf("pledge-%d", pledge.ID),
			Type:        ActivityPledge,
			Title:       title,
			Description: fmt.Sprintf("%s %s for %s", pledge.Name, verb, eventName),
			Amount:      currencyPrefix + pledge.AmountPledged.Display(),
			Time:        hoursAgo(i + 1),
			Status:      status,
		})
	}

	for i, event := range events {
		if i == mockEventLimit {
			break
		}
		status := "neutral"
		if event.IsFunded {
			status = "success"
		}
		activities = append(activities, MockActivity{
			ID:          fmt.Sprintf("event-%d", event.ID),
			Type:        ActivityEvent,
			Title:       "Event created",
			Description: fmt.Sprintf("%s scheduled at %s", event.Name, utils.FirstNonEmpty(utils.Value(event.Venue), "Venue not specified")),
			Amount:      currencyPrefix + event.TotalBudget.Display(),
			Time:        hoursAgo(i + mockPledgeLimit + 1),
			Status:      status,
		})
	}

	if len(activities) > mockActivityLimit {
		activities = activities[:mockActivityLimit]
	}
	return activities
}

func hoursAgo(hours int) string {
	now := time.Now()
	return humanize.RelTime(now.Add(-time.Duration(hours)*time.Hour), now, "ago", "from now")
}
