package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
	"hrdelegation_backend/internals/features/hr/delegations/model"
)

// fakeStore: in-memory DelegationStore untuk test service. Mencatat jumlah
// pemanggilan mutasi supaya test bisa memastikan operasi TIDAK terjadi.
type fakeStore struct {
	records []model.DelegationModel
	nextID  uint

	updateManyCalls int
	approveAllCalls int

	failFirstBySecondaryID bool
}

func newFakeStore(records ...model.DelegationModel) *fakeStore {
	s := &fakeStore{}
	for _, r := range records {
		rr := r
		if rr.DelegationID == 0 {
			s.nextID++
			rr.DelegationID = s.nextID
		} else if rr.DelegationID > s.nextID {
			s.nextID = rr.DelegationID
		}
		s.records = append(s.records, rr)
	}
	return s
}

func (s *fakeStore) List(_ context.Context, onlyPending bool) ([]model.DelegationModel, error) {
	out := []model.DelegationModel{}
	for _, r := range s.records {
		if onlyPending && r.IsApproved {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) Get(_ context.Context, id uint) (*model.DelegationModel, error) {
	for i := range s.records {
		if s.records[i].DelegationID == id {
			m := s.records[i]
			return &m, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على بيانات الإيفاد")
}

func (s *fakeStore) Create(_ context.Context, m *model.DelegationModel) error {
	s.nextID++
	m.DelegationID = s.nextID
	m.CreatedAt = time.Now()
	s.records = append(s.records, *m)
	return nil
}

func (s *fakeStore) Update(ctx context.Context, id uint, m *model.DelegationModel) (*model.DelegationModel, error) {
	for i := range s.records {
		if s.records[i].DelegationID == id {
			old := s.records[i]
			m.DelegationID = id
			m.CreatedAt = old.CreatedAt
			m.IsApproved = old.IsApproved
			m.ApprovalDate = old.ApprovalDate
			s.records[i] = *m
			return s.Get(ctx, id)
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على بيانات الإيفاد")
}

func (s *fakeStore) Delete(_ context.Context, id uint) error {
	for i := range s.records {
		if s.records[i].DelegationID == id {
			if s.records[i].IsApproved {
				return fiber.NewError(fiber.StatusForbidden, "هذا الإيفاد تمت مصادقته ولا يمكن حذفه")
			}
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على الإيفاد")
}

func (s *fakeStore) UpdateMany(_ context.Context, secondaryID int, updates map[string]any) (int64, error) {
	s.updateManyCalls++
	var n int64
	for i := range s.records {
		if s.records[i].SecondaryID != nil && *s.records[i].SecondaryID == secondaryID {
			if v, ok := updates["delegation_province"].(string); ok {
				s.records[i].Province = v
			}
			if v, ok := updates["delegation_purpose"].(string); ok {
				s.records[i].Purpose = v
			}
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) Approve(ctx context.Context, id uint) (*model.DelegationModel, error) {
	for i := range s.records {
		if s.records[i].DelegationID == id {
			if s.records[i].IsApproved {
				return nil, fiber.NewError(fiber.StatusConflict, "هذا الإيفاد تمت مصادقته مسبقاً")
			}
			now := time.Now()
			s.records[i].IsApproved = true
			s.records[i].ApprovalDate = &now
			return s.Get(ctx, id)
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على بيانات الإيفاد")
}

func (s *fakeStore) Unapprove(ctx context.Context, id uint) (*model.DelegationModel, error) {
	for i := range s.records {
		if s.records[i].DelegationID == id {
			if !s.records[i].IsApproved {
				return nil, fiber.NewError(fiber.StatusConflict, "هذا الإيفاد غير مصادق عليه")
			}
			s.records[i].IsApproved = false
			return s.Get(ctx, id)
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لم يتم العثور على بيانات الإيفاد")
}

func (s *fakeStore) ApproveAll(_ context.Context, secondaryID int) (int64, error) {
	s.approveAllCalls++
	var n int64
	now := time.Now()
	for i := range s.records {
		r := &s.records[i]
		if r.SecondaryID != nil && *r.SecondaryID == secondaryID && !r.IsApproved {
			r.IsApproved = true
			r.ApprovalDate = &now
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) FirstBySecondaryID(_ context.Context, secondaryID int) (*model.DelegationModel, error) {
	if s.failFirstBySecondaryID {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "فشل في جلب بيانات المجموعة")
	}
	for i := range s.records {
		if s.records[i].SecondaryID != nil && *s.records[i].SecondaryID == secondaryID {
			m := s.records[i]
			return &m, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لا يوجد إيفاد بهذا المعرف الثانوي")
}

func (s *fakeStore) FirstByLetterNumber(_ context.Context, letterNumber string) (*model.DelegationModel, error) {
	for i := range s.records {
		if s.records[i].LetterNumber == letterNumber {
			m := s.records[i]
			return &m, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "لا يوجد إيفاد بهذا الأمر الإداري")
}

func (s *fakeStore) LastSecondaryID(_ context.Context) (int, error) {
	last := 0
	for _, r := range s.records {
		if r.SecondaryID != nil && *r.SecondaryID > last {
			last = *r.SecondaryID
		}
	}
	return last, nil
}

func (s *fakeStore) Stats(_ context.Context) (*dto.DelegationStats, error) {
	var stats dto.DelegationStats
	for _, r := range s.records {
		stats.TotalCount++
		if r.IsApproved {
			stats.ApprovedCount++
		}
	}
	stats.PendingCount = stats.TotalCount - stats.ApprovedCount
	return &stats, nil
}

func (s *fakeStore) SaveReportInfo(_ context.Context, _ *model.ReportInfoModel) error {
	return nil
}
