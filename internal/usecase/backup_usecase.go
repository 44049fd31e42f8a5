package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"ats-backend/internal/domain"
)

type backupUsecase struct {
	repo domain.DataRepository
}

func NewBackupUsecase(repo domain.DataRepository) domain.BackupUsecase {
	return &backupUsecase{repo: repo}
}

func (u *backupUsecase) Export() (domain.Snapshot, string) {
	snap := u.repo.ExportSnapshot()
	filename := fmt.Sprintf("ats-backup-%s.json", time.Now().Format("2006-01-02"))
	return snap, filename
}

// Import restores from a raw backup document. The document only has to be a
// JSON object; each known top-level key present replaces its collection and
// absent keys leave theirs untouched. Records inside the collections are
// accepted as-is.
func (u *backupUsecase) Import(data []byte) bool {
	// reject non-objects (arrays, scalars, null) up front
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil || probe == nil {
		return false
	}

	var patch domain.SnapshotPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return false
	}

	u.repo.RestoreSnapshot(patch)
	return true
}

func (u *backupUsecase) Reset() {
	u.repo.Reset()
}
