package rag

import (
	"context"
	"testing"

	"portfolio-chat/internal/model"
)

type fakeContentLister struct {
	projects []model.Project
	skills   []model.Skill
	faqs     []model.FAQ
}

func (l *fakeContentLister) ListPublishedProjects() ([]model.Project, error) { return l.projects, nil }
func (l *fakeContentLister) ListSkills() ([]model.Skill, error)              { return l.skills, nil }
func (l *fakeContentLister) ListExperiences() ([]model.Experience, error)    { return nil, nil }
func (l *fakeContentLister) ListPersonalInfo() ([]model.PersonalInfo, error) { return nil, nil }
func (l *fakeContentLister) ListTestimonials() ([]model.Testimonial, error)  { return nil, nil }
func (l *fakeContentLister) ListActiveFAQs() ([]model.FAQ, error)            { return l.faqs, nil }

type fakeUpserter struct {
	entries map[string]*model.ContentEmbedding
}

func newFakeUpserter() *fakeUpserter {
	return &fakeUpserter{entries: make(map[string]*model.ContentEmbedding)}
}

func (u *fakeUpserter) Upsert(entry *model.ContentEmbedding) error {
	u.entries[string(entry.Kind)+":"+entry.RefID] = entry
	return nil
}

func TestIndexAllCoversEveryKind(t *testing.T) {
	lister := &fakeContentLister{
		projects: []model.Project{{ID: "p1", Title: "Banking App"}},
		skills:   []model.Skill{{ID: 3, Name: "Figma"}},
		faqs:     []model.FAQ{{ID: 9, Question: "Do you freelance?"}},
	}
	store := newFakeUpserter()
	indexer := NewIndexer(lister, store, NewHashEmbedder())

	result, err := indexer.IndexAll(context.Background())
	if err != nil {
		t.Fatalf("index all failed: %v", err)
	}
	if result.Embedded != 3 || result.Skipped != 0 {
		t.Fatalf("embedded=%d skipped=%d, want 3/0", result.Embedded, result.Skipped)
	}

	entry, ok := store.entries["project:p1"]
	if !ok {
		t.Fatal("project p1 not upserted")
	}
	if len(entry.Vector()) != hashEmbeddingLength {
		t.Fatalf("stored vector length = %d", len(entry.Vector()))
	}
	if entry.ModelTag != "fallback" {
		t.Fatalf("model tag = %q", entry.ModelTag)
	}
	if entry.SourceText == "" {
		t.Fatal("source text not stored")
	}
	if _, ok := store.entries["skill:3"]; !ok {
		t.Fatal("skill 3 not upserted")
	}
	if _, ok := store.entries["faq:9"]; !ok {
		t.Fatal("faq 9 not upserted")
	}
}

func TestIndexAllIdempotentByKey(t *testing.T) {
	lister := &fakeContentLister{projects: []model.Project{{ID: "p1", Title: "Banking App"}}}
	store := newFakeUpserter()
	indexer := NewIndexer(lister, store, NewHashEmbedder())

	for i := 0; i < 2; i++ {
		if _, err := indexer.IndexAll(context.Background()); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}
	if len(store.entries) != 1 {
		t.Fatalf("got %d entries after repeated runs, want 1", len(store.entries))
	}
}

func TestIndexKindSkipsUnembeddableRecords(t *testing.T) {
	lister := &fakeContentLister{projects: []model.Project{
		{ID: "p1", Title: "Banking App"},
		{ID: "p2", Title: "Logo Refresh"},
	}}
	store := newFakeUpserter()
	indexer := NewIndexer(lister, store, &failingEmbedder{failOn: 1})

	result, err := indexer.IndexKind(context.Background(), model.KindProject)
	if err != nil {
		t.Fatalf("index kind failed: %v", err)
	}
	if result.Embedded != 1 || result.Skipped != 1 {
		t.Fatalf("embedded=%d skipped=%d, want 1/1", result.Embedded, result.Skipped)
	}
}

func TestIndexKindRejectsUnknownKind(t *testing.T) {
	indexer := NewIndexer(&fakeContentLister{}, newFakeUpserter(), NewHashEmbedder())

	if _, err := indexer.IndexKind(context.Background(), model.ContentKind("widget")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

// failingEmbedder errors on the nth call (0-based) and succeeds otherwise.
type failingEmbedder struct {
	calls  int
	failOn int
}

func (e *failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	call := e.calls
	e.calls++
	if call == e.failOn {
		return nil, errBoom
	}
	return []float32{1, 0}, nil
}

func (e *failingEmbedder) ModelTag() string { return "failing" }
