package response

// SweepReportResponse is the structured summary of one reconciliation run.
type SweepReportResponse struct {
	BookingsScanned int      `json:"bookings_scanned"`
	RoomsPromoted   int      `json:"rooms_promoted"`
	NoShows         int      `json:"no_shows"`
	RoomsReleased   int      `json:"rooms_released"`
	Errors          []string `json:"errors,omitempty"`
}
