package helper

import "time"

// Nama hari Arab, index mengikuti time.Weekday (Minggu = 0).
var arabicDayNames = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// DayName: nama hari (Arab) dari tanggal. Fungsi murni — tanggal kosong
// menghasilkan string kosong, tidak pernah error.
func DayName(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return arabicDayNames[int(t.Weekday())]
}

// DateOnly: normalisasi timestamp ke tanggal kalender (00:00 UTC).
// Dipakai sebelum merge prefill supaya jam/zona dari server tidak ikut terbawa.
func DateOnly(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// FormatDate: format tampilan dd/mm/yyyy untuk label opsi grup.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
