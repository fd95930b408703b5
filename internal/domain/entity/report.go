package entity

import (
	"time"
)

// Report is a single business's dated claim about a customer's behavior,
// stored in the "reports" collection. Reports are append-only: once created
// they are never updated or deleted.
type Report struct {
	ID            string    `json:"id" firestore:"id"`
	BusinessID    string    `json:"business_id" firestore:"businessId"`
	CustomerPhone string    `json:"customer_phone" firestore:"customerPhone"`
	ReportType    string    `json:"report_type" firestore:"reportType"` // "positive" or "negative"
	Reason        string    `json:"reason" firestore:"reason"`
	Points        int       `json:"points" firestore:"points"`
	Timestamp     time.Time `json:"timestamp" firestore:"timestamp"`
}

const (
	ReportTypePositive = "positive"
	ReportTypeNegative = "negative"
)

// Reason is one entry of the fixed reason catalog. Its point value is
// snapshotted onto each report at submission time; changing the catalog
// later never retroactively changes existing records.
type Reason struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Points int    `json:"points"`
	Type   string `json:"type"`
}

var reasonCatalog = []Reason{
	{Code: "tipsWell", Label: "Tips Well", Points: 12, Type: ReportTypePositive},
	{Code: "veryResponsive", Label: "Very Responsive", Points: 3, Type: ReportTypePositive},
	{Code: "goodConversation", Label: "Good Conversation", Points: 5, Type: ReportTypePositive},
	{Code: "leftPositiveReview", Label: "Left Positive Review", Points: 15, Type: ReportTypePositive},
	{Code: "gaveReferral", Label: "Gave a Referral", Points: 21, Type: ReportTypePositive},
	{Code: "didNotPay", Label: "Did Not Pay", Points: -21, Type: ReportTypeNegative},
	{Code: "poorCommunication", Label: "Poor Communication", Points: -3, Type: ReportTypeNegative},
	{Code: "showedUpLate", Label: "Showed Up Late", Points: -12, Type: ReportTypeNegative},
	{Code: "unfriendlyRude", Label: "Unfriendly or Rude", Points: -10, Type: ReportTypeNegative},
	{Code: "noShow", Label: "No Show", Points: -18, Type: ReportTypeNegative},
}

// ReasonCatalog returns the full catalog, e.g. for the submission form.
func ReasonCatalog() []Reason {
	out := make([]Reason, len(reasonCatalog))
	copy(out, reasonCatalog)
	return out
}

// LookupReason resolves a reason code against the catalog.
func LookupReason(code string) (Reason, bool) {
	for _, r := range reasonCatalog {
		if r.Code == code {
			return r, true
		}
	}
	return Reason{}, false
}
