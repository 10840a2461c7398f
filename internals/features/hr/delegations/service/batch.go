package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/features/hr/delegations/dto"
)

// Batch synchronizer: "satu kohort berangkat/pulang/disetujui bersama".
// Field bersama tidak pernah diedit per-anggota — selalu lewat sini, satu
// operasi logis untuk seluruh secondary group.
type BatchSynchronizer struct {
	store DelegationStore
}

func NewBatchSynchronizer(store DelegationStore) *BatchSynchronizer {
	return &BatchSynchronizer{store: store}
}

var errNoSecondaryID = fiber.NewError(fiber.StatusBadRequest, "يرجى اختيار معرف ثانوي أولاً")

// Propagate: tulis field bersama ke SEMUA anggota grup. Tanpa secondary id,
// operasi berhenti dengan peringatan "pilih grup dulu" — bukan diam-diam no-op.
// Setelah sukses, caller wajib refetch koleksi + Recompute (state otoritatif
// ada di store, bukan di cache lokal).
func (b *BatchSynchronizer) Propagate(ctx context.Context, secondaryID *int, req *dto.SharedFieldsRequest) (int64, error) {
	if secondaryID == nil {
		return 0, errNoSecondaryID
	}

	updates, err := req.Updates()
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "لا توجد حقول للتحديث")
	}

	return b.store.UpdateMany(ctx, *secondaryID, updates)
}

// ApproveAll: mode khusus — flip approval seluruh grup sekali jalan.
// Idempotent: grup yang sudah full-approved menghasilkan 0 baris, tanpa error.
func (b *BatchSynchronizer) ApproveAll(ctx context.Context, secondaryID *int) (int64, error) {
	if secondaryID == nil {
		return 0, errNoSecondaryID
	}
	return b.store.ApproveAll(ctx, *secondaryID)
}
