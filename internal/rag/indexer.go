package rag

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"portfolio-chat/internal/model"
)

// EmbeddingUpserter is the write side of the embedding store.
type EmbeddingUpserter interface {
	Upsert(entry *model.ContentEmbedding) error
}

// ContentLister enumerates the records eligible for embedding: published
// projects, active FAQs, and every row of the remaining kinds.
type ContentLister interface {
	ListPublishedProjects() ([]model.Project, error)
	ListSkills() ([]model.Skill, error)
	ListExperiences() ([]model.Experience, error)
	ListPersonalInfo() ([]model.PersonalInfo, error)
	ListTestimonials() ([]model.Testimonial, error)
	ListActiveFAQs() ([]model.FAQ, error)
}

// Indexer (re-)embeds portfolio content. Runs are idempotent: each record
// upserts its single (kind, ref_id) row, so repeating a job replaces vectors
// instead of accumulating them.
type Indexer struct {
	content  ContentLister
	store    EmbeddingUpserter
	embedder Embedder
}

func NewIndexer(content ContentLister, store EmbeddingUpserter, embedder Embedder) *Indexer {
	return &Indexer{
		content:  content,
		store:    store,
		embedder: embedder,
	}
}

// IndexResult summarizes one indexing run.
type IndexResult struct {
	Embedded int `json:"embedded"`
	Skipped  int `json:"skipped"`
}

// IndexAll re-embeds every content kind.
func (ix *Indexer) IndexAll(ctx context.Context) (*IndexResult, error) {
	total := &IndexResult{}
	for _, kind := range model.AllContentKinds {
		result, err := ix.IndexKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		total.Embedded += result.Embedded
		total.Skipped += result.Skipped
	}
	return total, nil
}

// IndexKind re-embeds all records of one kind.
func (ix *Indexer) IndexKind(ctx context.Context, kind model.ContentKind) (*IndexResult, error) {
	contents, err := ix.listKind(kind)
	if err != nil {
		return nil, err
	}

	result := &IndexResult{}
	for _, content := range contents {
		if err := ix.indexOne(ctx, content); err != nil {
			// An unembeddable record is skipped, not fatal: the run should
			// still cover the rest of the corpus.
			log.Printf("embed %s:%s failed: %v", content.Kind, contentRefID(content), err)
			result.Skipped++
			continue
		}
		result.Embedded++
	}
	return result, nil
}

func (ix *Indexer) indexOne(ctx context.Context, content *model.Content) error {
	text := Normalize(content)
	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return err
	}

	entry := &model.ContentEmbedding{
		Kind:       content.Kind,
		RefID:      contentRefID(content),
		SourceText: text,
		ModelTag:   ix.embedder.ModelTag(),
	}
	entry.SetVector(vec)
	return ix.store.Upsert(entry)
}

func (ix *Indexer) listKind(kind model.ContentKind) ([]*model.Content, error) {
	var contents []*model.Content
	switch kind {
	case model.KindProject:
		projects, err := ix.content.ListPublishedProjects()
		if err != nil {
			return nil, err
		}
		for i := range projects {
			contents = append(contents, &model.Content{Kind: kind, Project: &projects[i]})
		}
	case model.KindSkill:
		skills, err := ix.content.ListSkills()
		if err != nil {
			return nil, err
		}
		for i := range skills {
			contents = append(contents, &model.Content{Kind: kind, Skill: &skills[i]})
		}
	case model.KindExperience:
		experiences, err := ix.content.ListExperiences()
		if err != nil {
			return nil, err
		}
		for i := range experiences {
			contents = append(contents, &model.Content{Kind: kind, Experience: &experiences[i]})
		}
	case model.KindPersonalInfo:
		infos, err := ix.content.ListPersonalInfo()
		if err != nil {
			return nil, err
		}
		for i := range infos {
			contents = append(contents, &model.Content{Kind: kind, PersonalInfo: &infos[i]})
		}
	case model.KindTestimonial:
		testimonials, err := ix.content.ListTestimonials()
		if err != nil {
			return nil, err
		}
		for i := range testimonials {
			contents = append(contents, &model.Content{Kind: kind, Testimonial: &testimonials[i]})
		}
	case model.KindFAQ:
		faqs, err := ix.content.ListActiveFAQs()
		if err != nil {
			return nil, err
		}
		for i := range faqs {
			contents = append(contents, &model.Content{Kind: kind, FAQ: &faqs[i]})
		}
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	return contents, nil
}

func contentRefID(content *model.Content) string {
	switch content.Kind {
	case model.KindProject:
		return content.Project.ID
	case model.KindSkill:
		return strconv.FormatUint(uint64(content.Skill.ID), 10)
	case model.KindExperience:
		return strconv.FormatUint(uint64(content.Experience.ID), 10)
	case model.KindPersonalInfo:
		return strconv.FormatUint(uint64(content.PersonalInfo.ID), 10)
	case model.KindTestimonial:
		return strconv.FormatUint(uint64(content.Testimonial.ID), 10)
	case model.KindFAQ:
		return strconv.FormatUint(uint64(content.FAQ.ID), 10)
	}
	return ""
}
