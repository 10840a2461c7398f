package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/constants"
	helper "hrdelegation_backend/internals/helpers"

	"hrdelegation_backend/internals/features/hr/delegations/model"
)

/* =========================================================
   Create / Update (multipart form)
========================================================= */

// DelegationRequest: payload form ikatan dinas. Tanggal dikirim sebagai
// string (yyyy-MM-dd atau ISO); file surat diambil terpisah dari multipart.
type DelegationRequest struct {
	DelegationType string `form:"delegation_type" json:"delegation_type" validate:"required"`
	EmployeeNumber string `form:"employee_number" json:"employee_number" validate:"required"`
	EmployeeName   string `form:"employee_name" json:"employee_name"`
	JobTitle       string `form:"job_title" json:"job_title"`
	Department     string `form:"department" json:"department"`

	SecondaryID  *int   `form:"secondary_id" json:"secondary_id"`
	LetterNumber string `form:"letter_number" json:"letter_number"`
	LetterDate   string `form:"letter_date" json:"letter_date"`

	DisengagementDate       string `form:"disengagement_date" json:"disengagement_date"`
	DisengagementTimeOption string `form:"disengagement_time_option" json:"disengagement_time_option"`

	DisengagementLetterDate   string `form:"disengagement_letter_date" json:"disengagement_letter_date"`
	DisengagementLetterNumber string `form:"disengagement_letter_number" json:"disengagement_letter_number"`

	TravelDate       string `form:"travel_date" json:"travel_date"`
	TravelTimeOption string `form:"travel_time_option" json:"travel_time_option"`

	ReturnDate       string `form:"return_date" json:"return_date"`
	ReturnTimeOption string `form:"return_time_option" json:"return_time_option"`

	StartWorkDate       string `form:"start_work_date" json:"start_work_date"`
	StartWorkTimeOption string `form:"start_work_time_option" json:"start_work_time_option"`

	ExtensionLetterDate   string `form:"extension_letter_date" json:"extension_letter_date"`
	ExtensionLetterNumber string `form:"extension_letter_number" json:"extension_letter_number"`
	ExtensionPeriod       int    `form:"extension_period" json:"extension_period"`

	DelegationPeriod  int    `form:"delegation_period" json:"delegation_period"`
	Province          string `form:"province" json:"province"`
	DestinationEntity string `form:"destination_entity" json:"destination_entity"`
	Purpose           string `form:"purpose" json:"purpose"`
	Notes             string `form:"notes" json:"notes"`

	InputUser string `form:"input_user" json:"input_user"`
}

// ParseDate: terima yyyy-MM-dd atau RFC3339, normalisasi ke tanggal kalender.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return helper.DateOnly(&t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "تنسيق التاريخ غير صالح: "+s)
	}
	return helper.DateOnly(&t), nil
}

// ToModel: konversi form → model. Nama hari SELALU dihitung ulang dari
// tanggalnya di sini; nilai hari dari client diabaikan.
func (r *DelegationRequest) ToModel() (*model.DelegationModel, error) {
	if r.DelegationType != constants.DelegationTypeInternal && r.DelegationType != constants.DelegationTypeExternal {
		return nil, fiber.NewError(fiber.StatusBadRequest, "نوع الإيفاد غير صالح")
	}
	if r.Province != "" && !constants.IsIraqProvince(r.Province) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "المحافظة غير موجودة ضمن القائمة")
	}
	if r.SecondaryID != nil && *r.SecondaryID <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "المعرف الثانوي يجب أن يكون رقماً موجباً")
	}

	m := &model.DelegationModel{
		DelegationType: r.DelegationType,
		EmployeeNumber: strings.TrimSpace(r.EmployeeNumber),
		EmployeeName:   strings.TrimSpace(r.EmployeeName),
		JobTitle:       strings.TrimSpace(r.JobTitle),
		Department:     strings.TrimSpace(r.Department),

		SecondaryID:  r.SecondaryID,
		LetterNumber: strings.TrimSpace(r.LetterNumber),

		DisengagementTimeOption: r.DisengagementTimeOption,
		TravelTimeOption:        r.TravelTimeOption,
		ReturnTimeOption:        r.ReturnTimeOption,
		StartWorkTimeOption:     r.StartWorkTimeOption,

		DisengagementLetterNumber: strings.TrimSpace(r.DisengagementLetterNumber),
		ExtensionLetterNumber:     strings.TrimSpace(r.ExtensionLetterNumber),
		ExtensionPeriod:           r.ExtensionPeriod,

		DelegationPeriod:  r.DelegationPeriod,
		Province:          r.Province,
		DestinationEntity: strings.TrimSpace(r.DestinationEntity),
		Purpose:           strings.TrimSpace(r.Purpose),
		Notes:             strings.TrimSpace(r.Notes),
		InputUser:         strings.TrimSpace(r.InputUser),
	}

	var err error
	if m.LetterDate, err = ParseDate(r.LetterDate); err != nil {
		return nil, err
	}
	if m.DisengagementDate, err = ParseDate(r.DisengagementDate); err != nil {
		return nil, err
	}
	if m.DisengagementLetterDate, err = ParseDate(r.DisengagementLetterDate); err != nil {
		return nil, err
	}
	if m.TravelDate, err = ParseDate(r.TravelDate); err != nil {
		return nil, err
	}
	if m.ReturnDate, err = ParseDate(r.ReturnDate); err != nil {
		return nil, err
	}
	if m.StartWorkDate, err = ParseDate(r.StartWorkDate); err != nil {
		return nil, err
	}
	if m.ExtensionLetterDate, err = ParseDate(r.ExtensionLetterDate); err != nil {
		return nil, err
	}

	RecomputeDayNames(m)
	return m, nil
}

// RecomputeDayNames: turunkan semua kolom *_day dari tanggalnya.
func RecomputeDayNames(m *model.DelegationModel) {
	m.DisengagementDay = helper.DayName(m.DisengagementDate)
	m.DisengagementLetterDay = helper.DayName(m.DisengagementLetterDate)
	m.TravelDay = helper.DayName(m.TravelDate)
	m.ReturnDay = helper.DayName(m.ReturnDate)
	m.StartWorkDay = helper.DayName(m.StartWorkDate)
	m.ExtensionLetterDay = helper.DayName(m.ExtensionLetterDate)
}

/* =========================================================
   Stats & misc
========================================================= */

type DelegationStats struct {
	TotalCount     int64 `json:"total_count"`
	ApprovedCount  int64 `json:"approved_count"`
	PendingCount   int64 `json:"pending_count"`
	ThisMonthCount int64 `json:"this_month_count"`
	ThisYearCount  int64 `json:"this_year_count"`
}

type ApproveAllRequest struct {
	SecondaryID *int `json:"secondary_id"`
}

type SaveReportInfoRequest struct {
	SecondaryID *int   `json:"secondary_id" validate:"required"`
	Timestamp   string `json:"timestamp"`
}
