package dto

// Stats is the dashboard aggregate for one period.
// Revenue is a fixed two-decimal string, summed from the
// current catalog price of each completed appointment's service.
type Stats struct {
	Period            string `json:"period"`
	AppointmentsCount int64  `json:"appointments_count"`
	CompletedCount    int64  `json:"completed_count"`
	PendingCount      int64  `json:"pending_count"`
	ClientsCount      int64  `json:"clients_count"`
	Revenue           string `json:"revenue"`
}
