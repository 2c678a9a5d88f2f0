package entity

// PaymentGroup merges the schedule items of one child and title into a
// single monthly payment line.
type PaymentGroup struct {
	Key             string
	ChildID         string
	Title           string
	ScheduleIDs     []string
	Fee             int
	PaymentCycleDay int
	LastPaidDate    string
	Supplies        []string
	Paid            bool
}

type ChildTotal struct {
	ChildID string
	Name    string
	Total   int
}

type PaymentSummary struct {
	Groups  []*PaymentGroup
	Total   int
	ByChild []ChildTotal
	Unpaid  int
}
