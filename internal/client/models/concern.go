package models

import "strings"

// OtherConcern selects a free-text concern.
const OtherConcern = "Other"

// ConcernTypes lists the predefined concerns offered by the chat form.
var ConcernTypes = []string{
	"Communication Issues",
	"Trust and Loyalty",
	"Conflict Resolution",
	"Commitment and Future Goals",
	"Emotional Distance",
	"Compatibility",
	"Intimacy and Affection",
	"Financial Stress",
	"Personal Growth and Independence",
	"Family or Social Influence",
	"Mental Health and Well-being",
	"Work-life Balance",
	"Parenting and Family Planning",
	"Long-Distance Relationship",
	OtherConcern,
}

// ResolveConcern returns the concern sent to the server: the selected
// predefined type, or the custom text when "Other" is selected.
func ResolveConcern(selected, custom string) string {
	if strings.EqualFold(strings.TrimSpace(selected), OtherConcern) || strings.TrimSpace(selected) == "" {
		return strings.TrimSpace(custom)
	}
	return selected
}
