package rag

import (
	"log"

	"portfolio-chat/internal/model"
)

// highConfidenceThreshold feeds the retrieval diagnostics only; it is not a
// filter.
const highConfidenceThreshold = 0.5

// Enhancer derives the structured parts of an answer from the retrieval
// results, independent of what text was generated. Its relevance floor is
// stricter than the context builder's: a reference surfaced to the UI is a
// stronger claim than text used as background.
type Enhancer struct {
	resolver     ContentResolver
	floor        float64
	galleryLimit int
}

func NewEnhancer(resolver ContentResolver, floor float64, galleryLimit int) *Enhancer {
	if galleryLimit < 0 {
		galleryLimit = 0
	}
	return &Enhancer{
		resolver:     resolver,
		floor:        floor,
		galleryLimit: galleryLimit,
	}
}

// Enhance combines the generation with references, media, a response-type
// classification, and a confidence signal derived from the raw results.
func (e *Enhancer) Enhance(generated Generation, results []Result) *Answer {
	if generated.Err != nil {
		return &Answer{
			Content:               generated.Content,
			ResponseType:          model.ResponseTypeError,
			ReferencedProjects:    []string{},
			ReferencedSkills:      []uint{},
			ReferencedExperiences: []uint{},
			MediaURLs:             []string{},
			ConfidenceScore:       0.0,
		}
	}

	answer := &Answer{
		Content:               generated.Content,
		ReferencedProjects:    []string{},
		ReferencedSkills:      []uint{},
		ReferencedExperiences: []uint{},
		MediaURLs:             []string{},
		TokensUsed:            generated.TokensUsed,
	}

	for _, result := range results {
		if result.Score < e.floor {
			continue
		}

		content, err := e.resolver.Resolve(result.Entry.Kind, result.Entry.RefID)
		if err != nil {
			log.Printf("resolve content %s:%s failed: %v", result.Entry.Kind, result.Entry.RefID, err)
			continue
		}
		if content == nil {
			continue
		}

		switch content.Kind {
		case model.KindProject:
			p := content.Project
			answer.ReferencedProjects = append(answer.ReferencedProjects, p.ID)
			if p.FeaturedImage != "" {
				answer.MediaURLs = append(answer.MediaURLs, p.FeaturedImage)
			}
			gallery := p.GalleryImages
			if len(gallery) > e.galleryLimit {
				gallery = gallery[:e.galleryLimit]
			}
			answer.MediaURLs = append(answer.MediaURLs, gallery...)
			if p.VideoURL != "" {
				answer.MediaURLs = append(answer.MediaURLs, p.VideoURL)
			}
		case model.KindSkill:
			answer.ReferencedSkills = append(answer.ReferencedSkills, content.Skill.ID)
		case model.KindExperience:
			answer.ReferencedExperiences = append(answer.ReferencedExperiences, content.Experience.ID)
		}
		// Other kinds inform the text but contribute no structured reference.
	}

	answer.ResponseType = classifyResponse(answer)
	answer.ConfidenceScore = maxScore(results)
	answer.RetrievalContext = RetrievalContext{
		QueryMatches:          len(results),
		HighConfidenceMatches: countAbove(results, highConfidenceThreshold),
	}
	return answer
}

// classifyResponse applies the fixed priority ordering over the extracted
// references.
func classifyResponse(answer *Answer) string {
	switch {
	case len(answer.ReferencedProjects) > 0 && len(answer.MediaURLs) > 0:
		return model.ResponseTypeProjectShowcase
	case len(answer.ReferencedProjects) > 0:
		return model.ResponseTypeTextWithMedia
	case len(answer.ReferencedSkills) > 0:
		return model.ResponseTypeSkillSummary
	case len(answer.ReferencedExperiences) > 0:
		return model.ResponseTypeExperienceTimeline
	}
	return model.ResponseTypeText
}

// maxScore is computed over the raw, pre-filter results: confidence reflects
// the best retrieval even when every result falls under the reference floor.
func maxScore(results []Result) float64 {
	best := 0.0
	for i, result := range results {
		if i == 0 || result.Score > best {
			best = result.Score
		}
	}
	return best
}

func countAbove(results []Result, threshold float64) int {
	count := 0
	for _, result := range results {
		if result.Score > threshold {
			count++
		}
	}
	return count
}
