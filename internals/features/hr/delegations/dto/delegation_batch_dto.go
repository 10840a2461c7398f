package dto

import (
	"time"

	helper "hrdelegation_backend/internals/helpers"
)

// SharedFieldsRequest: field bersama yang boleh disebarkan ke seluruh anggota
// kohort (secondary group) dalam satu operasi. Pointer nil = field tidak
// disentuh (partial update).
//
// Field identitas (id, employee_*) sengaja tidak ada di sini: yang bersama
// adalah atribut perjalanan, bukan siapa pegawainya.
type SharedFieldsRequest struct {
	DelegationType *string `json:"delegation_type"`

	LetterNumber *string `json:"letter_number"`
	LetterDate   *string `json:"letter_date"`

	DisengagementDate       *string `json:"disengagement_date"`
	DisengagementTimeOption *string `json:"disengagement_time_option"`

	DisengagementLetterDate   *string `json:"disengagement_letter_date"`
	DisengagementLetterNumber *string `json:"disengagement_letter_number"`

	TravelDate       *string `json:"travel_date"`
	TravelTimeOption *string `json:"travel_time_option"`

	ReturnDate       *string `json:"return_date"`
	ReturnTimeOption *string `json:"return_time_option"`

	StartWorkDate       *string `json:"start_work_date"`
	StartWorkTimeOption *string `json:"start_work_time_option"`

	ExtensionLetterDate   *string `json:"extension_letter_date"`
	ExtensionLetterNumber *string `json:"extension_letter_number"`
	ExtensionPeriod       *int    `json:"extension_period"`

	DelegationPeriod  *int    `json:"delegation_period"`
	Province          *string `json:"province"`
	DestinationEntity *string `json:"destination_entity"`
	Purpose           *string `json:"purpose"`
	Notes             *string `json:"notes"`

	LetterFile              *string `json:"letter_file"`
	ExtensionLetterFile     *string `json:"extension_letter_file"`
	DisengagementLetterFile *string `json:"disengagement_letter_file"`

	IsApproved       *bool   `json:"is_approved"`
	ApprovalDate     *string `json:"approval_date"`
	IsApprovedFico   *bool   `json:"is_approved_fico"`
	ApprovalDateFico *string `json:"approval_date_fico"`
}

// Updates: bangun map kolom→nilai untuk UpdateMany. Nama hari dihitung ulang
// dari tanggal yang dikirim — kolom *_day tidak pernah diterima dari caller.
func (r *SharedFieldsRequest) Updates() (map[string]any, error) {
	updates := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			updates[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			updates[col] = *v
		}
	}
	// tanggal + nama hari turunannya dalam satu gerakan
	setDate := func(dateCol, dayCol string, v *string) error {
		if v == nil {
			return nil
		}
		t, err := ParseDate(*v)
		if err != nil {
			return err
		}
		var tv *time.Time
		if t != nil {
			tv = t
		}
		updates[dateCol] = tv
		if dayCol != "" {
			updates[dayCol] = helper.DayName(tv)
		}
		return nil
	}

	setStr("delegation_type", r.DelegationType)
	setStr("delegation_letter_number", r.LetterNumber)
	if err := setDate("delegation_letter_date", "", r.LetterDate); err != nil {
		return nil, err
	}

	if err := setDate("delegation_disengagement_date", "delegation_disengagement_day", r.DisengagementDate); err != nil {
		return nil, err
	}
	setStr("delegation_disengagement_time_option", r.DisengagementTimeOption)

	if err := setDate("delegation_disengagement_letter_date", "delegation_disengagement_letter_day", r.DisengagementLetterDate); err != nil {
		return nil, err
	}
	setStr("delegation_disengagement_letter_number", r.DisengagementLetterNumber)

	if err := setDate("delegation_travel_date", "delegation_travel_day", r.TravelDate); err != nil {
		return nil, err
	}
	setStr("delegation_travel_time_option", r.TravelTimeOption)

	if err := setDate("delegation_return_date", "delegation_return_day", r.ReturnDate); err != nil {
		return nil, err
	}
	setStr("delegation_return_time_option", r.ReturnTimeOption)

	if err := setDate("delegation_start_work_date", "delegation_start_work_day", r.StartWorkDate); err != nil {
		return nil, err
	}
	setStr("delegation_start_work_time_option", r.StartWorkTimeOption)

	if err := setDate("delegation_extension_letter_date", "delegation_extension_letter_day", r.ExtensionLetterDate); err != nil {
		return nil, err
	}
	setStr("delegation_extension_letter_number", r.ExtensionLetterNumber)
	setInt("delegation_extension_period", r.ExtensionPeriod)

	setInt("delegation_period", r.DelegationPeriod)
	setStr("delegation_province", r.Province)
	setStr("delegation_destination_entity", r.DestinationEntity)
	setStr("delegation_purpose", r.Purpose)
	setStr("delegation_notes", r.Notes)

	setStr("delegation_letter_file", r.LetterFile)
	setStr("delegation_extension_letter_file", r.ExtensionLetterFile)
	setStr("delegation_disengagement_letter_file", r.DisengagementLetterFile)

	setBool("delegation_is_approved", r.IsApproved)
	if err := setDate("delegation_approval_date", "", r.ApprovalDate); err != nil {
		return nil, err
	}
	setBool("delegation_is_approved_fico", r.IsApprovedFico)
	if err := setDate("delegation_approval_date_fico", "", r.ApprovalDateFico); err != nil {
		return nil, err
	}

	return updates, nil
}
