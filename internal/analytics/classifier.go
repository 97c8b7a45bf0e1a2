package analytics

import (
	"crmdigest/internal/models"
	"strings"
)

const callToken = "call"

var (
	// markers injected by telephony integrations (JustCall)
	integrationSubjects = []string{"Outgoing Call", "Incoming Call"}
	recordingMarkers    = []string{"Call Recording", "justcall.io/recordings/"}
)

// IsCall reports whether an activity represents a phone call. The activity
// type alone is unreliable once integrations inject records, so text fields
// are checked too; any matching heuristic is enough.
func IsCall(a models.Activity) bool {
	switch {
	case a.Type == callToken:
		return true
	case containsFold(a.KeyString, callToken):
		return true
	case containsFold(a.Subject, callToken):
		return true
	case containsFold(a.Note, callToken):
		return true
	case containsAny(a.Subject, integrationSubjects):
		return true
	case containsAny(a.Note, recordingMarkers):
		return true
	}
	return false
}

func containsFold(s, substr string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), substr)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
