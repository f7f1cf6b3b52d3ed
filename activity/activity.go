package activity

import (
	"net/http"
	"sync"
	"time"

	"sunsmart/events"
	"sunsmart/models"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

// maxEntries caps the log to the most recent interactions. Entries are
// process-lifetime only and never persisted.
const maxEntries = 20

var (
	mu      sync.Mutex
	entries []models.Activity
)

// Log records one interaction at the head of the activity log and emits it
// on the portal event channel for live dashboards.
func Log(actType, label, content string) {
	entry := models.Activity{
		ID:        utils.GenerateRandomString(9),
		Timestamp: time.Now().Format("15:04:05"),
		Type:      actType,
		Label:     label,
		Content:   content,
	}

	mu.Lock()
	entries = append([]models.Activity{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	mu.Unlock()

	events.Emit(events.Event{Kind: events.KindActivity, Payload: entry})
}

// Recent returns the log, newest first.
func Recent() []models.Activity {
	mu.Lock()
	defer mu.Unlock()
	out := make([]models.Activity, len(entries))
	copy(out, entries)
	return out
}

// Reset clears the log. Test hook.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
}

// GetActivity returns the recent interaction log.
func GetActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Recent())
}
