package dto

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/constants"
)

func strp(s string) *string { return &s }
func intp(v int) *int       { return &v }

func baseRequest() DelegationRequest {
	return DelegationRequest{
		DelegationType: constants.DelegationTypeInternal,
		EmployeeNumber: "10231",
		EmployeeName:   "أحمد كاظم جاسم",
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	// RFC3339 dinormalisasi ke tanggal kalender
	got, err = ParseDate("2026-01-15T13:45:00+03:00")
	if err != nil {
		t.Fatalf("ParseDate RFC3339: %v", err)
	}
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseDate RFC3339 = %v, want %v", got, want)
	}

	if got, err = ParseDate(""); err != nil || got != nil {
		t.Errorf("string kosong harus (nil, nil), dapat (%v, %v)", got, err)
	}

	if _, err = ParseDate("15/01/2026"); err == nil {
		t.Error("format tidak dikenal harus error")
	}
}

func TestToModelRecomputesDayNames(t *testing.T) {
	req := baseRequest()
	req.TravelDate = "2026-01-15" // Kamis
	req.ReturnDate = "2026-01-18" // Minggu

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.TravelDay != "الخميس" {
		t.Errorf("TravelDay = %q, want الخميس", m.TravelDay)
	}
	if m.ReturnDay != "الأحد" {
		t.Errorf("ReturnDay = %q, want الأحد", m.ReturnDay)
	}
	if m.DisengagementDay != "" {
		t.Errorf("tanggal kosong harus menghasilkan hari kosong, dapat %q", m.DisengagementDay)
	}
}

func TestToModelValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DelegationRequest)
	}{
		{"tipe tidak dikenal", func(r *DelegationRequest) { r.DelegationType = "dinas" }},
		{"provinsi di luar daftar", func(r *DelegationRequest) { r.Province = "دمشق" }},
		{"secondary id nol", func(r *DelegationRequest) { r.SecondaryID = intp(0) }},
		{"secondary id negatif", func(r *DelegationRequest) { r.SecondaryID = intp(-2) }},
		{"tanggal rusak", func(r *DelegationRequest) { r.TravelDate = "bukan-tanggal" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := baseRequest()
			c.mutate(&req)
			_, err := req.ToModel()
			fe, ok := err.(*fiber.Error)
			if !ok || fe.Code != fiber.StatusBadRequest {
				t.Fatalf("harus 400, dapat %v", err)
			}
		})
	}
}

func TestSharedFieldsUpdates(t *testing.T) {
	req := SharedFieldsRequest{
		TravelDate: strp("2026-01-15"),
		Province:   strp("بغداد"),
	}
	updates, err := req.Updates()
	if err != nil {
		t.Fatalf("Updates: %v", err)
	}

	if updates["delegation_province"] != "بغداد" {
		t.Errorf("delegation_province = %v", updates["delegation_province"])
	}
	// kolom hari ikut dihitung dari tanggalnya
	if updates["delegation_travel_day"] != "الخميس" {
		t.Errorf("delegation_travel_day = %v, want الخميس", updates["delegation_travel_day"])
	}
	tv, ok := updates["delegation_travel_date"].(*time.Time)
	if !ok || tv == nil || !tv.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("delegation_travel_date = %v", updates["delegation_travel_date"])
	}

	// field nil tidak masuk map
	if _, ok := updates["delegation_purpose"]; ok {
		t.Error("field nil ikut masuk map update")
	}
	if len(updates) != 3 {
		t.Errorf("len(updates) = %d, want 3", len(updates))
	}
}

func TestSharedFieldsUpdatesEmpty(t *testing.T) {
	updates, err := (&SharedFieldsRequest{}).Updates()
	if err != nil {
		t.Fatalf("Updates: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("payload kosong harus map kosong, dapat %v", updates)
	}
}

func TestSharedFieldsUpdatesBadDate(t *testing.T) {
	_, err := (&SharedFieldsRequest{TravelDate: strp("xx")}).Updates()
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("tanggal rusak harus 400, dapat %v", err)
	}
}
