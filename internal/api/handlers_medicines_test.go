package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/herhealth/internal/models"
)

func TestMedicineLogRequiresCycle(t *testing.T) {
	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "ana@example.com")

	response, body := doJSON(t, app, http.MethodPost, "/api/medicines", authCookie, fiber.Map{"name": "Ibuprofen"})
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 without cycles, got %d", response.StatusCode)
	}
	if got := readAPIError(t, body); got != "log a cycle before logging medicine" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestMedicineLogAndList(t *testing.T) {
	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "ana@example.com")
	cycle := logCycle(t, app, authCookie, "2024-01-01", "2024-01-05")
	cycleID := cycle["cycle"].(map[string]any)["cycle_id"]

	response, body := doJSON(t, app, http.MethodPost, "/api/medicines", authCookie, fiber.Map{
		"name":     "Ibuprofen",
		"dosage":   "200mg",
		"taken_on": "2024-01-02",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", response.StatusCode, body)
	}

	response, body = doJSON(t, app, http.MethodGet, "/api/medicines", authCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := struct {
		Medicines []models.Medicine `json:"medicines"`
	}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode medicines: %v", err)
	}
	if len(payload.Medicines) != 1 {
		t.Fatalf("expected 1 medicine, got %d", len(payload.Medicines))
	}
	if float64(payload.Medicines[0].CycleID) != cycleID {
		t.Fatalf("expected medicine on cycle %v, got %d", cycleID, payload.Medicines[0].CycleID)
	}
	if got := payload.Medicines[0].TakenOn.Format("2006-01-02"); got != "2024-01-02" {
		t.Fatalf("unexpected taken_on %s", got)
	}
}
