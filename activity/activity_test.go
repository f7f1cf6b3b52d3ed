package activity

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"sunsmart/models"

	"github.com/julienschmidt/httprouter"
)

func TestLogNewestFirst(t *testing.T) {
	Reset()
	defer Reset()

	Log(models.ActivityCart, "first", "a")
	Log(models.ActivityChat, "second", "b")

	got := Recent()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Label != "second" || got[1].Label != "first" {
		t.Errorf("entries not newest first: %+v", got)
	}
	if got[0].ID == "" || got[0].Timestamp == "" {
		t.Error("entry missing id or timestamp")
	}
}

func TestLogCapsAtTwenty(t *testing.T) {
	Reset()
	defer Reset()

	for i := 0; i < 25; i++ {
		Log(models.ActivitySearch, fmt.Sprintf("entry-%d", i), "x")
	}

	got := Recent()
	if len(got) != maxEntries {
		t.Fatalf("expected %d entries, got %d", maxEntries, len(got))
	}
	if got[0].Label != "entry-24" {
		t.Errorf("newest entry missing from head: %s", got[0].Label)
	}
	if got[len(got)-1].Label != "entry-5" {
		t.Errorf("oldest surviving entry wrong: %s", got[len(got)-1].Label)
	}
}

func TestGetActivityHandler(t *testing.T) {
	Reset()
	defer Reset()

	Log(models.ActivityForm, "Placed Order: SRI-TRK-1234", "Delivering to: Hyderabad")

	router := httprouter.New()
	router.GET("/api/activity", GetActivity)

	req := httptest.NewRequest("GET", "/api/activity", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var got []models.Activity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].Type != models.ActivityForm {
		t.Errorf("unexpected log contents: %+v", got)
	}
}
