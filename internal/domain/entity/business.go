package entity

import (
	"time"
)

// Business is a registered business profile, stored in the "users"
// collection and keyed by the identity provider's user id.
type Business struct {
	ID               string    `json:"id" firestore:"id"`
	Email            string    `json:"email" firestore:"email"`
	BusinessName     string    `json:"business_name" firestore:"businessName"`
	BusinessWebsite  string    `json:"business_website,omitempty" firestore:"businessWebsite,omitempty"`
	BusinessPhone    string    `json:"business_phone" firestore:"businessPhone"`
	ReportsSubmitted int64     `json:"reports_submitted" firestore:"reportsSubmitted"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
