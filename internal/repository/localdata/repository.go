// Package localdata owns the in-memory authoritative collections and keeps
// them synchronized to the local key-value store. It is the single writer:
// entities never leave the package by reference.
package localdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/pkg/localstore"

	"github.com/google/uuid"
)

// Storage keys, carried over from the browser tool's localStorage layout so
// existing backups and intuition transfer.
const (
	keyCandidates = "ats-candidates"
	keyPosts      = "ats-education-posts"
	keyActivities = "ats-activities"
)

var storageKeys = []string{keyCandidates, keyPosts, keyActivities}

// Repository implements domain.DataRepository. A single mutex serializes all
// operations: the logical model is one user acting serially, the HTTP layer
// merely adds accidental concurrency.
type Repository struct {
	mu    sync.Mutex
	store localstore.Store
	log   *slog.Logger

	candidates []domain.Candidate
	posts      []domain.EducationPost
	activities []domain.Activity
}

func New(store localstore.Store, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{store: store, log: log}
}

var _ domain.DataRepository = (*Repository)(nil)

// Load restores collections from the store, or seeds sample data when the
// store holds nothing at all. A key holding an empty collection still counts
// as data: a reset store stays empty.
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seeded := true
	for _, key := range storageKeys {
		ok, err := r.store.Has(key)
		if err != nil {
			return fmt.Errorf("localdata: probe %s: %w", key, err)
		}
		if ok {
			seeded = false
			break
		}
	}

	if seeded {
		r.seedLocked()
		r.persistLocked()
		r.log.Info("seeded sample data", "candidates", len(r.candidates), "posts", len(r.posts))
		return nil
	}

	r.loadKeyLocked(keyCandidates, &r.candidates)
	r.loadKeyLocked(keyPosts, &r.posts)
	r.loadKeyLocked(keyActivities, &r.activities)
	return nil
}

// loadKeyLocked reads one collection; a missing key or corrupt payload
// leaves the collection empty rather than failing startup.
func (r *Repository) loadKeyLocked(key string, dst any) {
	data, ok, err := r.store.Get(key)
	if err != nil {
		r.log.Warn("failed to read collection", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Warn("failed to decode collection", "key", key, "error", err)
	}
}

// persistLocked writes all three collections. Persistence is best-effort:
// failures are logged and never surfaced to callers, and the in-memory state
// is not rolled back.
func (r *Repository) persistLocked() {
	r.writeKeyLocked(keyCandidates, r.candidates)
	r.writeKeyLocked(keyPosts, r.posts)
	r.writeKeyLocked(keyActivities, r.activities)
}

func (r *Repository) writeKeyLocked(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.log.Warn("failed to encode collection", "key", key, "error", err)
		return
	}
	if err := r.store.Set(key, data); err != nil {
		r.log.Warn("failed to persist collection", "key", key, "error", err)
	}
}

func now() time.Time {
	return time.Now().UTC()
}

func newID() string {
	return uuid.NewString()
}

// --- Candidates ---

func (r *Repository) Candidates() []domain.Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyCandidates(r.candidates)
}

func (r *Repository) GetCandidate(id string) (*domain.Candidate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			c := copyCandidate(r.candidates[i])
			return &c, true
		}
	}
	return nil, false
}

func (r *Repository) AddCandidate(input domain.CandidateInput) domain.Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now()
	status := input.Status
	if status == "" {
		status = domain.StatusNew
	}
	tags := input.TechnicalTags
	if tags == nil {
		tags = []string{}
	}

	c := domain.Candidate{
		ID:            newID(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Position:      input.Position,
		Status:        status,
		Notes:         input.Notes,
		TechnicalTags: append([]string(nil), tags...),
		ExperienceTag: input.ExperienceTag,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	r.candidates = append(r.candidates, c)
	r.appendActivityLocked(domain.ActivityCandidateAdded,
		fmt.Sprintf("%s님이 %s에 지원했습니다.", c.Name, c.Position))
	r.persistLocked()
	return copyCandidate(c)
}

func (r *Repository) UpdateCandidate(id string, patch domain.CandidatePatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.findCandidateLocked(id)
	if i < 0 {
		return
	}
	c := &r.candidates[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Position != nil {
		c.Position = *patch.Position
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.TechnicalTags != nil {
		c.TechnicalTags = append([]string(nil), (*patch.TechnicalTags)...)
	}
	if patch.ExperienceTag != nil {
		c.ExperienceTag = *patch.ExperienceTag
	}
	c.UpdatedAt = now()

	r.appendActivityLocked(domain.ActivityCandidateUpdated,
		fmt.Sprintf("%s님의 정보가 수정되었습니다.", c.Name))
	r.persistLocked()
}

func (r *Repository) DeleteCandidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.findCandidateLocked(id)
	if i < 0 {
		return
	}
	name := r.candidates[i].Name
	r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
	r.appendActivityLocked(domain.ActivityCandidateDeleted,
		fmt.Sprintf("%s님이 삭제되었습니다.", name))
	r.persistLocked()
}

func (r *Repository) ScheduleInterview(candidateID string, input domain.InterviewInput) *domain.Interview {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.findCandidateLocked(candidateID)
	if i < 0 {
		return nil
	}
	c := &r.candidates[i]
	iv := domain.Interview{
		ID:          newID(),
		Date:        input.Date,
		Type:        input.Type,
		Location:    input.Location,
		Notes:       input.Notes,
		ScheduledAt: now(),
	}
	c.Interviews = append(c.Interviews, iv)
	// scheduling always moves the candidate into the interview stage
	c.Status = domain.StatusInterview
	c.UpdatedAt = now()

	r.appendActivityLocked(domain.ActivityCandidateUpdated,
		fmt.Sprintf("%s님의 정보가 수정되었습니다.", c.Name))
	r.persistLocked()
	out := iv
	return &out
}

func (r *Repository) AddEvaluation(candidateID string, input domain.EvaluationInput) *domain.Evaluation {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.findCandidateLocked(candidateID)
	if i < 0 {
		return nil
	}
	c := &r.candidates[i]
	ev := domain.Evaluation{
		ID:                 newID(),
		TechnicalScore:     input.TechnicalScore,
		CommunicationScore: input.CommunicationScore,
		CulturalFitScore:   input.CulturalFitScore,
		TotalScore:         float64(input.TechnicalScore+input.CommunicationScore+input.CulturalFitScore) / 3,
		Notes:              input.Notes,
		EvaluatedAt:        now(),
	}
	c.Evaluations = append(c.Evaluations, ev)
	c.UpdatedAt = now()

	r.appendActivityLocked(domain.ActivityCandidateUpdated,
		fmt.Sprintf("%s님의 정보가 수정되었습니다.", c.Name))
	r.persistLocked()
	out := ev
	return &out
}

func (r *Repository) findCandidateLocked(id string) int {
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			return i
		}
	}
	return -1
}

// --- Education posts ---

func (r *Repository) EducationPosts() []domain.EducationPost {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.EducationPost(nil), r.posts...)
}

func (r *Repository) GetEducationPost(id string) (*domain.EducationPost, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, true
		}
	}
	return nil, false
}

func (r *Repository) AddEducationPost(input domain.EducationPostInput) domain.EducationPost {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now()
	p := domain.EducationPost{
		ID:        newID(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	r.posts = append(r.posts, p)
	r.appendActivityLocked(domain.ActivityPostAdded,
		fmt.Sprintf("\"%s\" 게시물이 작성되었습니다.", p.Title))
	r.persistLocked()
	return p
}

// UpdateEducationPost deliberately appends no activity; only candidate
// updates are logged.
func (r *Repository) UpdateEducationPost(id string, patch domain.EducationPostPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		if patch.Title != nil {
			r.posts[i].Title = *patch.Title
		}
		if patch.Content != nil {
			r.posts[i].Content = *patch.Content
		}
		r.posts[i].UpdatedAt = now()
		r.persistLocked()
		return
	}
}

func (r *Repository) DeleteEducationPost(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		title := r.posts[i].Title
		r.posts = append(r.posts[:i], r.posts[i+1:]...)
		r.appendActivityLocked(domain.ActivityPostDeleted,
			fmt.Sprintf("\"%s\" 게시물이 삭제되었습니다.", title))
		r.persistLocked()
		return
	}
}

// --- Activity log ---

func (r *Repository) Activities() []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Activity(nil), r.activities...)
}

func (r *Repository) AddActivity(typ domain.ActivityType, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendActivityLocked(typ, description)
	r.persistLocked()
}

// appendActivityLocked inserts newest-first and truncates beyond the cap.
func (r *Repository) appendActivityLocked(typ domain.ActivityType, description string) {
	a := domain.Activity{
		ID:          newID(),
		Type:        typ,
		Description: description,
		Timestamp:   now(),
	}
	keep := r.activities
	if len(keep) > domain.ActivityLogCap-1 {
		keep = keep[:domain.ActivityLogCap-1]
	}
	r.activities = append([]domain.Activity{a}, keep...)
}

// --- Snapshot / reset ---

func (r *Repository) ExportSnapshot() domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Snapshot{
		Candidates:     copyCandidates(r.candidates),
		EducationPosts: append([]domain.EducationPost{}, r.posts...),
		Activities:     append([]domain.Activity{}, r.activities...),
		ExportedAt:     now(),
	}
}

// RestoreSnapshot wholesale-replaces every collection present in the patch.
// Record contents are taken as-is; per-record validation is deliberately not
// performed.
func (r *Repository) RestoreSnapshot(patch domain.SnapshotPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.Candidates != nil {
		r.candidates = copyCandidates(*patch.Candidates)
	}
	if patch.EducationPosts != nil {
		r.posts = append([]domain.EducationPost(nil), (*patch.EducationPosts)...)
	}
	if patch.Activities != nil {
		r.activities = append([]domain.Activity(nil), (*patch.Activities)...)
	}
	r.appendActivityLocked(domain.ActivityDataRestored, "백업 데이터가 성공적으로 복원되었습니다.")
	r.persistLocked()
}

// Reset clears everything, storage keys included. The activity log is wiped
// with the rest, so no activity is recorded.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.candidates = nil
	r.posts = nil
	r.activities = nil
	for _, key := range storageKeys {
		if err := r.store.Delete(key); err != nil {
			r.log.Warn("failed to remove collection", "key", key, "error", err)
		}
	}
}

// --- copy helpers ---

func copyCandidates(src []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, len(src))
	for i := range src {
		out[i] = copyCandidate(src[i])
	}
	return out
}

func copyCandidate(c domain.Candidate) domain.Candidate {
	cp := c
	cp.TechnicalTags = append([]string(nil), c.TechnicalTags...)
	cp.Interviews = append([]domain.Interview(nil), c.Interviews...)
	cp.Evaluations = append([]domain.Evaluation(nil), c.Evaluations...)
	return cp
}
