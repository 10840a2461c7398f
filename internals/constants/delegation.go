package constants

// Tipe ikatan dinas (delegasi) sesuai form HR.
const (
	DelegationTypeInternal = "داخلي"
	DelegationTypeExternal = "خارجي"
)

var DelegationTypes = []string{
	DelegationTypeInternal,
	DelegationTypeExternal,
}

// Opsi waktu keberangkatan/penugasan (pilihan tetap dari form).
const (
	TimeOptionBeforeNoon = "قبل الظهر"
	TimeOptionAfterNoon  = "بعد الظهر"
	TimeOptionBeforeSix  = "قبل الساعة السادسة مساءً"
	TimeOptionAfterSix   = "بعد الساعة السادسة مساءً"
)

var (
	// disengagement / travel / start-work pakai sebelum-sesudah dzuhur
	HalfDayTimeOptions = []string{TimeOptionBeforeNoon, TimeOptionAfterNoon}
	// return pakai sebelum-sesudah jam 18:00
	ReturnTimeOptions = []string{TimeOptionBeforeSix, TimeOptionAfterSix}
)

// Daftar provinsi Irak (tetap, dipakai validasi form).
var IraqProvinces = []string{
	"بغداد", "البصرة", "نينوى", "أربيل", "النجف", "كربلاء", "كركوك", "الأنبار", "ديالى", "واسط",
	"ميسان", "بابل", "ذي قار", "صلاح الدين", "دهوك", "السليمانية", "القادسية", "المثنى",
}

func IsIraqProvince(p string) bool {
	for _, v := range IraqProvinces {
		if v == p {
			return true
		}
	}
	return false
}

// Batas upload dokumen delegasi: hanya PDF, maksimal 5MB.
const (
	DelegationFileContentType  = "application/pdf"
	DelegationFileMaxSizeBytes = 5 * 1024 * 1024
)
