package budget

type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentBank  PaymentMethod = "bank"
	PaymentCash  PaymentMethod = "cash"
)

// Event is a budgeted occasion. Every money field except TotalBudget is
// computed by the server.
type Event struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Venue              *string `json:"venue"`
	TotalBudget        Amount  `json:"total_budget"`
	EventDate          string  `json:"event_date"` // YYYY-MM-DD
	User               int64   `json:"user"`
	IsFunded           bool    `json:"is_funded"`
	TotalReceived      Amount  `json:"total_received"`
	TotalPledged       Amount  `json:"total_pledged"`
	PercentageCovered  Amount  `json:"percentage_covered"`
	OutstandingBalance Amount  `json:"outstanding_balance"`
	OverpaidAmount     Amount  `json:"overpaid_amount"`
}

type EventInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Venue       string `json:"venue,omitempty"`
	TotalBudget Amount `json:"total_budget"`
	EventDate   string `json:"event_date"`
}

type BudgetItem struct {
	ID                  int64  `json:"id"`
	Event               *int64 `json:"event"`
	Category            string `json:"category"`
	EstimatedBudget     Amount `json:"estimated_budget"`
	IsFunded            bool   `json:"is_funded"`
	TotalVendorPayments Amount `json:"total_vendor_payments"`
	RemainingBudget     Amount `json:"remaining_budget"`
	IsFullyPaid         bool   `json:"is_fully_paid"`
}

type BudgetItemInput struct {
	Event           int64  `json:"event"`
	Category        string `json:"category"`
	EstimatedBudget Amount `json:"estimated_budget"`
	IsFunded        bool   `json:"is_funded"`
}

type Task struct {
	ID              int64  `json:"id"`
	BudgetItem      int64  `json:"budget_item"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	AllocatedAmount Amount `json:"allocated_amount"`
	AmountPaid      Amount `json:"amount_paid"`
	Balance         Amount `json:"balance"` // allocated minus paid
	User            int64  `json:"user"`
}

type TaskInput struct {
	BudgetItem      int64  `json:"budget_item"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	AllocatedAmount Amount `json:"allocated_amount"`
	AmountPaid      Amount `json:"amount_paid"`
}

// Pledge is a contributor's promise towards an event budget.
type Pledge struct {
	ID            int64  `json:"id"`
	Event         *int64 `json:"event"`
	AmountPledged Amount `json:"amount_pledged"`
	IsFulfilled   bool   `json:"is_fulfilled"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	User          int64  `json:"user"`
	TotalPaid     Amount `json:"total_paid"`
	Balance       Amount `json:"balance"`
}

type PledgeInput struct {
	Event         int64  `json:"event"`
	AmountPledged Amount `json:"amount_pledged"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
}

// ManualPayment is a payment recorded by hand against a pledge.
type ManualPayment struct {
	ID          int64   `json:"id"`
	Event       *int64  `json:"event"`
	Pledge      *int64  `json:"pledge"`
	Amount      Amount  `json:"amount"`
	Date        string  `json:"date"`
	User        int64   `json:"user"`
	PhoneNumber *string `json:"phone_number"` // from the pledge
	Name        *string `json:"name"`         // from the pledge
}

type ManualPaymentInput struct {
	Event  *int64 `json:"event,omitempty"`
	Pledge *int64 `json:"pledge,omitempty"`
	Amount Amount `json:"amount"`
}

// MpesaPayment is a mobile-money payment.
type MpesaPayment struct {
	ID            int64  `json:"id"`
	Event         int64  `json:"event"`
	Pledge        *int64 `json:"pledge"`
	Amount        Amount `json:"amount"`
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"` // ISO timestamp
	User          int64  `json:"user"`
}

type MpesaPaymentInput struct {
	Event         int64  `json:"event"`
	Pledge        *int64 `json:"pledge,omitempty"`
	Amount        Amount `json:"amount"`
	TransactionID string `json:"transaction_id"`
}

// ServiceProvider is a vendor hired against a budget item.
type ServiceProvider struct {
	ID            int64   `json:"id"`
	BudgetItem    int64   `json:"budget_item"`
	ServiceType   string  `json:"service_type"`
	Name          string  `json:"name"`
	PhoneNumber   string  `json:"phone_number"`
	Email         *string `json:"email"`
	AmountCharged Amount  `json:"amount_charged"`
	TotalReceived Amount  `json:"total_received"`
	BalanceDue    Amount  `json:"balance_due"`
	User          int64   `json:"user"`
}

type ServiceProviderInput struct {
	BudgetItem    int64  `json:"budget_item"`
	ServiceType   string `json:"service_type"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email,omitempty"`
	AmountCharged Amount `json:"amount_charged"`
}

type VendorPayment struct {
	ID              int64         `json:"id"`
	BudgetItem      int64         `json:"budget_item"`
	ServiceProvider int64         `json:"service_provider"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TransactionCode *string       `json:"transaction_code"`
	Amount          *Amount       `json:"amount"`
	Confirmed       bool          `json:"confirmed"`
	DatePaid        string        `json:"date_paid"` // ISO timestamp
	User            int64         `json:"user"`
}

type VendorPaymentInput struct {
	BudgetItem      int64         `json:"budget_item"`
	ServiceProvider int64         `json:"service_provider"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TransactionCode string        `json:"transaction_code,omitempty"`
	Amount          Amount        `json:"amount"`
	Confirmed       bool          `json:"confirmed"`
}

// GeneralDashboard summarizes every event of the user.
type GeneralDashboard struct {
	Summary        DashboardSummary `json:"summary"`
	UpcomingEvents []Event          `json:"upcoming_events"`
}

type DashboardSummary struct {
	TotalEvents  int    `json:"total_events"`
	ActiveEvents int    `json:"active_events"` // event date today or later
	FundedEvents int    `json:"funded_events"`
	TotalBudget  Amount `json:"total_budget"`
}

// EventDashboard is the detail view of a single event.
type EventDashboard struct {
	Event         Event         `json:"event"`
	Metrics       EventMetrics  `json:"metrics"`
	Pledges       []Pledge      `json:"pledges"`
	BudgetItems   []BudgetItem  `json:"budget_items"`
	Tasks         []Task        `json:"tasks"`
	BudgetSummary BudgetSummary `json:"budget_summary"`
}

type EventMetrics struct {
	TotalPledged       Amount `json:"total_pledged"`
	TotalReceived      Amount `json:"total_received"`
	PercentageCovered  Amount `json:"percentage_covered"`
	OutstandingBalance Amount `json:"outstanding_balance"`
}

type BudgetSummary struct {
	TotalBudget Amount `json:"total_budget"`
	TotalSpent  Amount `json:"total_spent"`
}

type ActivityType string

const (
	ActivityEvent   ActivityType = "event"
	ActivityPledge  ActivityType = "pledge"
	ActivityPayment ActivityType = "payment"
)

// Activity is an entry of the recent-activity feed. Which of Name,
// AmountPledged and Amount is set depends on Type.
type Activity struct {
	Type          ActivityType `json:"type"`
	ID            int64        `json:"id"`
	Created       string       `json:"created"` // ISO timestamp
	Name          *string      `json:"name,omitempty"`
	AmountPledged *Amount      `json:"amount_pledged,omitempty"`
	Amount        *Amount      `json:"amount,omitempty"`
}
