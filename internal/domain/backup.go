package domain

import "time"

// Snapshot is the backup interchange document, the one externally durable
// format. Every collection is serialized in full.
type Snapshot struct {
	Candidates     []Candidate     `json:"candidates"`
	EducationPosts []EducationPost `json:"educationPosts"`
	Activities     []Activity      `json:"activities"`
	ExportedAt     time.Time       `json:"exportedAt"`
}

// SnapshotPatch is the import-side view of a Snapshot. Pointer slices
// distinguish an absent top-level key (collection untouched) from a present
// empty one (collection replaced with nothing).
type SnapshotPatch struct {
	Candidates     *[]Candidate     `json:"candidates"`
	EducationPosts *[]EducationPost `json:"educationPosts"`
	Activities     *[]Activity      `json:"activities"`
}

type BackupUsecase interface {
	// Export returns the snapshot plus the conventional download filename
	// (ats-backup-<YYYY-MM-DD>.json).
	Export() (Snapshot, string)
	// Import restores collections from a raw backup document. It returns
	// false, leaving state unchanged, on any parse or shape failure.
	Import(data []byte) bool
	Reset()
}
