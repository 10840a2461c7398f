package delegations

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/model"
)

type DelegationSeed struct {
	DelegationType string `json:"delegation_type"`
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	JobTitle       string `json:"job_title"`
	Department     string `json:"department"`
	SecondaryID    *int   `json:"secondary_id"`
	LetterNumber   string `json:"letter_number"`
	LetterDate     string `json:"letter_date"`
	TravelDate     string `json:"travel_date"`
	ReturnDate     string `json:"return_date"`
	Province       string `json:"province"`
	Destination    string `json:"destination_entity"`
	Purpose        string `json:"purpose"`
	InputUser      string `json:"input_user"`
}

func SeedDelegationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []DelegationSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// Nomor pegawai + nomor kitab yang sudah ada dilewati
	var existing []model.DelegationModel
	if err := db.Select("delegation_employee_number, delegation_letter_number").
		Find(&existing).Error; err != nil {
		log.Fatalf("❌ Gagal ambil data delegasi yang sudah ada: %v", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, e := range existing {
		existingMap[e.EmployeeNumber+"|"+e.LetterNumber] = true
	}

	var rows []model.DelegationModel
	for _, s := range seeds {
		key := s.EmployeeNumber + "|" + s.LetterNumber
		if existingMap[key] {
			log.Printf("ℹ️ Delegasi pegawai '%s' kitab '%s' sudah ada, dilewati.", s.EmployeeNumber, s.LetterNumber)
			continue
		}

		m := model.DelegationModel{
			DelegationType:    s.DelegationType,
			EmployeeNumber:    s.EmployeeNumber,
			EmployeeName:      s.EmployeeName,
			JobTitle:          s.JobTitle,
			Department:        s.Department,
			SecondaryID:       s.SecondaryID,
			LetterNumber:      s.LetterNumber,
			Province:          s.Province,
			DestinationEntity: s.Destination,
			Purpose:           s.Purpose,
			InputUser:         s.InputUser,
		}
		var err error
		if m.LetterDate, err = dto.ParseDate(s.LetterDate); err != nil {
			log.Fatalf("❌ letter_date tidak valid untuk '%s': %v", s.EmployeeNumber, err)
		}
		if m.TravelDate, err = dto.ParseDate(s.TravelDate); err != nil {
			log.Fatalf("❌ travel_date tidak valid untuk '%s': %v", s.EmployeeNumber, err)
		}
		if m.ReturnDate, err = dto.ParseDate(s.ReturnDate); err != nil {
			log.Fatalf("❌ return_date tidak valid untuk '%s': %v", s.EmployeeNumber, err)
		}
		dto.RecomputeDayNames(&m)

		rows = append(rows, m)
	}

	if len(rows) == 0 {
		log.Println("ℹ️ Tidak ada delegasi baru untuk di-seed.")
		return
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("❌ Gagal insert seed delegasi: %v", err)
	}
	log.Printf("✅ %d delegasi berhasil di-seed.", len(rows))
}
