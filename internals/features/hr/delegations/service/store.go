package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/model"
)

// DelegationStore: satu-satunya pintu tulis ke record delegasi. Komponen
// grouping/draft/batch hanya membaca lewat kontrak ini sehingga bisa di-test
// dengan fake in-memory.
type DelegationStore interface {
	// List: onlyPending=true untuk user non-privileged (record approved disembunyikan).
	List(ctx context.Context, onlyPending bool) ([]model.DelegationModel, error)
	Get(ctx context.Context, id uint) (*model.DelegationModel, error)
	Create(ctx context.Context, m *model.DelegationModel) error
	// Update: tulis ulang seluruh field form; kolom approval & created_at
	// dipertahankan dari row lama.
	Update(ctx context.Context, id uint, m *model.DelegationModel) (*model.DelegationModel, error)
	Delete(ctx context.Context, id uint) error

	// Propagasi field bersama ke seluruh anggota satu secondary group.
	UpdateMany(ctx context.Context, secondaryID int, updates map[string]any) (int64, error)

	// Approval: approval_date distempel DB (NOW()), bukan jam client.
	Approve(ctx context.Context, id uint) (*model.DelegationModel, error)
	Unapprove(ctx context.Context, id uint) (*model.DelegationModel, error)
	ApproveAll(ctx context.Context, secondaryID int) (int64, error)

	FirstBySecondaryID(ctx context.Context, secondaryID int) (*model.DelegationModel, error)
	FirstByLetterNumber(ctx context.Context, letterNumber string) (*model.DelegationModel, error)
	LastSecondaryID(ctx context.Context) (int, error)

	Stats(ctx context.Context) (*dto.DelegationStats, error)

	// Bookmark sesi cetak laporan (payload JSONB apa adanya).
	SaveReportInfo(ctx context.Context, info *model.ReportInfoModel) error
}

/* =========================================================
   GORM implementation
========================================================= */

type gormDelegationStore struct {
	db *gorm.DB
}

func NewDelegationStore(db *gorm.DB) DelegationStore {
	return &gormDelegationStore{db: db}
}

func (s *gormDelegationStore) List(ctx context.Context, onlyPending bool) ([]model.DelegationModel, error) {
	var out []model.DelegationModel
	q := s.db.WithContext(ctx).Model(&model.DelegationModel{}).Order("delegation_id ASC")
	if onlyPending {
		q = q.Where("delegation_is_approved = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب الإيفادات")
	}
	return out, nil
}

func (s *gormDelegationStore) Get(ctx context.Context, id uint) (*model.DelegationModel, error) {
	var m model.DelegationModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على بيانات الإيفاد")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب بيانات الإيفاد")
	}
	return &m, nil
}

func (s *gormDelegationStore) Create(ctx context.Context, m *model.DelegationModel) error {
	m.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "فشل في إنشاء الإيفاد")
	}
	return nil
}

func (s *gormDelegationStore) Update(ctx context.Context, id uint, m *model.DelegationModel) (*model.DelegationModel, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.DelegationID = id
	m.CreatedAt = existing.CreatedAt
	// status approval tidak ikut payload form — jalurnya lewat Approve/Unapprove
	m.IsApproved = existing.IsApproved
	m.ApprovalDate = existing.ApprovalDate
	m.IsApprovedFico = existing.IsApprovedFico
	m.ApprovalDateFico = existing.ApprovalDateFico
	now := time.Now()
	m.UpdatedAt = &now

	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في تحديث الإيفاد")
	}
	return s.Get(ctx, id)
}

func (s *gormDelegationStore) Delete(ctx context.Context, id uint) error {
	// guard terakhir di sisi store: record approved tidak boleh dihapus
	res := s.db.WithContext(ctx).
		Where("delegation_id = ? AND delegation_is_approved = ?", id, false).
		Delete(&model.DelegationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "فشل حذف الايفاد")
	}
	if res.RowsAffected == 0 {
		var cnt int64
		s.db.WithContext(ctx).Model(&model.DelegationModel{}).
			Where("delegation_id = ?", id).Count(&cnt)
		if cnt > 0 {
			return fiber.NewError(fiber.StatusForbidden, "هذا الإيفاد تمت مصادقته ولا يمكن حذفه")
		}
		return fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على الإيفاد")
	}
	return nil
}

func (s *gormDelegationStore) UpdateMany(ctx context.Context, secondaryID int, updates map[string]any) (int64, error) {
	now := time.Now()
	updates["updated_at"] = &now
	res := s.db.WithContext(ctx).Model(&model.DelegationModel{}).
		Where("delegation_secondary_id = ?", secondaryID).
		Updates(updates)
	if res.Error != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "حدث خطأ أثناء تحديث الإيفادات المرتبطة")
	}
	return res.RowsAffected, nil
}

func (s *gormDelegationStore) Approve(ctx context.Context, id uint) (*model.DelegationModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.IsApproved {
		return nil, fiber.NewError(fiber.StatusConflict, "هذا الإيفاد تمت مصادقته مسبقاً")
	}
	// approval_date = NOW() dari DB, bukan jam aplikasi (hindari clock skew)
	if err := s.db.WithContext(ctx).Model(m).Updates(map[string]any{
		"delegation_is_approved":   true,
		"delegation_approval_date": gorm.Expr("NOW()"),
	}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "حدث خطأ أثناء المصادقة")
	}
	return s.Get(ctx, id)
}

func (s *gormDelegationStore) Unapprove(ctx context.Context, id uint) (*model.DelegationModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsApproved {
		return nil, fiber.NewError(fiber.StatusConflict, "هذا الإيفاد غير مصادق عليه")
	}
	// approval_date dibiarkan — jejak kapan terakhir disetujui
	if err := s.db.WithContext(ctx).Model(m).
		Update("delegation_is_approved", false).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "حدث خطأ أثناء إلغاء المصادقة")
	}
	return s.Get(ctx, id)
}

func (s *gormDelegationStore) ApproveAll(ctx context.Context, secondaryID int) (int64, error) {
	// idempotent: baris yang sudah approved dilewati, bukan error
	res := s.db.WithContext(ctx).Model(&model.DelegationModel{}).
		Where("delegation_secondary_id = ? AND delegation_is_approved = ?", secondaryID, false).
		Updates(map[string]any{
			"delegation_is_approved":   true,
			"delegation_approval_date": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "حدث خطأ أثناء مصادقة الإيفادات")
	}
	return res.RowsAffected, nil
}

func (s *gormDelegationStore) FirstBySecondaryID(ctx context.Context, secondaryID int) (*model.DelegationModel, error) {
	var m model.DelegationModel
	err := s.db.WithContext(ctx).
		Where("delegation_secondary_id = ?", secondaryID).
		Order("delegation_id ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "لا يوجد إيفاد بهذا المعرف الثانوي")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب بيانات المجموعة")
	}
	return &m, nil
}

func (s *gormDelegationStore) FirstByLetterNumber(ctx context.Context, letterNumber string) (*model.DelegationModel, error) {
	var m model.DelegationModel
	err := s.db.WithContext(ctx).
		Where("delegation_letter_number = ?", letterNumber).
		Order("delegation_id ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "لا يوجد إيفاد بهذا الأمر الإداري")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب بيانات الأمر الإداري")
	}
	return &m, nil
}

func (s *gormDelegationStore) LastSecondaryID(ctx context.Context) (int, error) {
	var last *int
	err := s.db.WithContext(ctx).Model(&model.DelegationModel{}).
		Select("MAX(delegation_secondary_id)").
		Scan(&last).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب آخر معرف ثانوي")
	}
	if last == nil {
		return 0, nil
	}
	return *last, nil
}

func (s *gormDelegationStore) Stats(ctx context.Context) (*dto.DelegationStats, error) {
	var stats dto.DelegationStats
	db := s.db.WithContext(ctx).Model(&model.DelegationModel{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب الإحصائيات")
	}
	if err := db.Session(&gorm.Session{}).
		Where("delegation_is_approved = ?", true).
		Count(&stats.ApprovedCount).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب الإحصائيات")
	}
	stats.PendingCount = stats.TotalCount - stats.ApprovedCount

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", monthStart).
		Count(&stats.ThisMonthCount).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب الإحصائيات")
	}
	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", yearStart).
		Count(&stats.ThisYearCount).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب الإحصائيات")
	}
	return &stats, nil
}

func (s *gormDelegationStore) SaveReportInfo(ctx context.Context, info *model.ReportInfoModel) error {
	info.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(info).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "حدث خطأ أثناء حفظ معلومات التقرير")
	}
	return nil
}
