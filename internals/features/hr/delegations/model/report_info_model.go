package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportInfoModel: bookmark sesi cetak laporan (SaveReportInfo).
// Payload disimpan apa adanya sebagai JSONB.
type ReportInfoModel struct {
	ReportInfoID      uuid.UUID      `json:"report_info_id" gorm:"column:report_info_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportSecondaryID int            `json:"secondary_id" gorm:"column:report_info_secondary_id;not null;index"`
	ReportUserID      string         `json:"user_id" gorm:"column:report_info_user_id"`
	ReportPayload     datatypes.JSON `json:"payload" gorm:"column:report_info_payload"`
	CreatedAt         time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (ReportInfoModel) TableName() string {
	return "delegation_report_infos"
}
