package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-chat/internal/model"
)

func showcaseResolver() *fakeResolver {
	return &fakeResolver{contents: map[string]*model.Content{
		"project:p1": {Kind: model.KindProject, Project: &model.Project{
			ID:            "p1",
			Title:         "Banking App",
			FeaturedImage: "https://cdn.example.com/banking/featured.png",
			GalleryImages: []string{"g1.png", "g2.png", "g3.png", "g4.png"},
			VideoURL:      "https://cdn.example.com/banking/demo.mp4",
		}},
		"skill:1":      {Kind: model.KindSkill, Skill: &model.Skill{ID: 1, Name: "Figma"}},
		"experience:7": {Kind: model.KindExperience, Experience: &model.Experience{ID: 7, Title: "Senior Designer"}},
	}}
}

func TestEnhancerProjectShowcasePriority(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	answer := enhancer.Enhance(Generation{Content: "Here is the banking app."}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindProject, RefID: "p1"}, Score: 0.6},
		{Entry: model.ContentEmbedding{Kind: model.KindSkill, RefID: "1"}, Score: 0.5},
	})

	// A project with media always wins over a co-retrieved skill.
	assert.Equal(t, model.ResponseTypeProjectShowcase, answer.ResponseType)
	assert.Equal(t, []string{"p1"}, answer.ReferencedProjects)
	assert.Equal(t, []uint{1}, answer.ReferencedSkills)
	assert.Equal(t, 0.6, answer.ConfidenceScore)
}

func TestEnhancerGalleryTruncation(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 2)

	answer := enhancer.Enhance(Generation{Content: "x"}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindProject, RefID: "p1"}, Score: 0.9},
	})

	// featured + capped gallery + video
	assert.Equal(t, []string{
		"https://cdn.example.com/banking/featured.png",
		"g1.png",
		"g2.png",
		"https://cdn.example.com/banking/demo.mp4",
	}, answer.MediaURLs)
}

func TestEnhancerSkillSummary(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	answer := enhancer.Enhance(Generation{Content: "x"}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindSkill, RefID: "1"}, Score: 0.7},
	})

	assert.Equal(t, model.ResponseTypeSkillSummary, answer.ResponseType)
	assert.Empty(t, answer.ReferencedProjects)
	assert.Empty(t, answer.MediaURLs)
}

func TestEnhancerExperienceTimeline(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	answer := enhancer.Enhance(Generation{Content: "x"}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindExperience, RefID: "7"}, Score: 0.7},
	})

	assert.Equal(t, model.ResponseTypeExperienceTimeline, answer.ResponseType)
	assert.Equal(t, []uint{7}, answer.ReferencedExperiences)
}

func TestEnhancerConfidenceFromRawResults(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	// Every score sits under the reference floor, so nothing is referenced,
	// but confidence still reflects the best raw retrieval.
	answer := enhancer.Enhance(Generation{Content: "x"}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindProject, RefID: "p1"}, Score: 0.38},
		{Entry: model.ContentEmbedding{Kind: model.KindSkill, RefID: "1"}, Score: 0.31},
	})

	assert.Equal(t, model.ResponseTypeText, answer.ResponseType)
	assert.Empty(t, answer.ReferencedProjects)
	assert.Empty(t, answer.ReferencedSkills)
	assert.Equal(t, 0.38, answer.ConfidenceScore)
	assert.Equal(t, 2, answer.RetrievalContext.QueryMatches)
	assert.Equal(t, 0, answer.RetrievalContext.HighConfidenceMatches)
}

func TestEnhancerErrorShortCircuit(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	answer := enhancer.Enhance(Generation{Content: "canned failure text", Err: errBoom}, []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindProject, RefID: "p1"}, Score: 0.9},
	})

	assert.Equal(t, model.ResponseTypeError, answer.ResponseType)
	assert.Equal(t, "canned failure text", answer.Content)
	assert.Equal(t, 0.0, answer.ConfidenceScore)
	assert.Empty(t, answer.ReferencedProjects)
	assert.Empty(t, answer.MediaURLs)
}

func TestEnhancerEmptyResults(t *testing.T) {
	enhancer := NewEnhancer(showcaseResolver(), 0.4, 3)

	answer := enhancer.Enhance(Generation{Content: "x"}, nil)

	assert.Equal(t, model.ResponseTypeText, answer.ResponseType)
	assert.Equal(t, 0.0, answer.ConfidenceScore)
	assert.NotNil(t, answer.ReferencedProjects)
	assert.NotNil(t, answer.MediaURLs)
}
