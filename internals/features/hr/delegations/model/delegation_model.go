package model

import "time"

// DelegationModel: satu record ikatan dinas (delegasi) per pegawai.
//
// Catatan kolom:
//   - delegation_secondary_id NULL = belum masuk kohort manapun. Nilai baru
//     selalu max(secondary_id)+1, tidak pernah daur ulang.
//   - kolom *_day (nama hari) diturunkan dari tanggalnya saat tulis;
//     jangan pernah dipercaya dari payload client.
type DelegationModel struct {
	DelegationID uint `json:"id" gorm:"column:delegation_id;primaryKey"`

	DelegationType string `json:"delegation_type" gorm:"column:delegation_type;not null"`

	// Snapshot data pegawai saat penugasan
	EmployeeNumber string `json:"employee_number" gorm:"column:delegation_employee_number;not null;index"`
	EmployeeName   string `json:"employee_name" gorm:"column:delegation_employee_name"`
	JobTitle       string `json:"job_title" gorm:"column:delegation_job_title"`
	Department     string `json:"department" gorm:"column:delegation_department"`

	// Dua dimensi pengelompokan yang independen
	SecondaryID  *int   `json:"secondary_id" gorm:"column:delegation_secondary_id;index"`
	LetterNumber string `json:"letter_number" gorm:"column:delegation_letter_number;index"`

	LetterDate *time.Time `json:"letter_date" gorm:"column:delegation_letter_date"`

	DisengagementDate       *time.Time `json:"disengagement_date" gorm:"column:delegation_disengagement_date"`
	DisengagementDay        string     `json:"disengagement_day" gorm:"column:delegation_disengagement_day"`
	DisengagementTimeOption string     `json:"disengagement_time_option" gorm:"column:delegation_disengagement_time_option"`

	DisengagementLetterDate   *time.Time `json:"disengagement_letter_date" gorm:"column:delegation_disengagement_letter_date"`
	DisengagementLetterDay    string     `json:"disengagement_letter_day" gorm:"column:delegation_disengagement_letter_day"`
	DisengagementLetterNumber string     `json:"disengagement_letter_number" gorm:"column:delegation_disengagement_letter_number"`

	TravelDate       *time.Time `json:"travel_date" gorm:"column:delegation_travel_date"`
	TravelDay        string     `json:"travel_day" gorm:"column:delegation_travel_day"`
	TravelTimeOption string     `json:"travel_time_option" gorm:"column:delegation_travel_time_option"`

	ReturnDate       *time.Time `json:"return_date" gorm:"column:delegation_return_date"`
	ReturnDay        string     `json:"return_day" gorm:"column:delegation_return_day"`
	ReturnTimeOption string     `json:"return_time_option" gorm:"column:delegation_return_time_option"`

	StartWorkDate       *time.Time `json:"start_work_date" gorm:"column:delegation_start_work_date"`
	StartWorkDay        string     `json:"start_work_day" gorm:"column:delegation_start_work_day"`
	StartWorkTimeOption string     `json:"start_work_time_option" gorm:"column:delegation_start_work_time_option"`

	ExtensionLetterDate   *time.Time `json:"extension_letter_date" gorm:"column:delegation_extension_letter_date"`
	ExtensionLetterDay    string     `json:"extension_letter_day" gorm:"column:delegation_extension_letter_day"`
	ExtensionLetterNumber string     `json:"extension_letter_number" gorm:"column:delegation_extension_letter_number"`
	ExtensionPeriod       int        `json:"extension_period" gorm:"column:delegation_extension_period;default:0"`

	DelegationPeriod  int    `json:"delegation_period" gorm:"column:delegation_period;default:0"`
	Province          string `json:"province" gorm:"column:delegation_province"`
	DestinationEntity string `json:"destination_entity" gorm:"column:delegation_destination_entity"`
	Purpose           string `json:"purpose" gorm:"column:delegation_purpose"`
	Notes             string `json:"notes" gorm:"column:delegation_notes"`

	// Object key dokumen di OSS (maks. 3 surat per record)
	LetterFile              string `json:"letter_file" gorm:"column:delegation_letter_file"`
	ExtensionLetterFile     string `json:"extension_letter_file" gorm:"column:delegation_extension_letter_file"`
	DisengagementLetterFile string `json:"disengagement_letter_file" gorm:"column:delegation_disengagement_letter_file"`

	// Dua jalur approval independen: umum (HR) dan fico (keuangan)
	IsApproved       bool       `json:"is_approved" gorm:"column:delegation_is_approved;not null;default:false;index"`
	ApprovalDate     *time.Time `json:"approval_date" gorm:"column:delegation_approval_date"`
	IsApprovedFico   bool       `json:"is_approved_fico" gorm:"column:delegation_is_approved_fico;not null;default:false"`
	ApprovalDateFico *time.Time `json:"approval_date_fico" gorm:"column:delegation_approval_date_fico"`

	InputUser string `json:"input_user" gorm:"column:delegation_input_user"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (DelegationModel) TableName() string {
	return "delegations"
}
