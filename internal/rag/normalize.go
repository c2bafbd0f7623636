package rag

import (
	"fmt"
	"strings"

	"portfolio-chat/internal/model"
)

// Normalize flattens a content record into the text that gets embedded.
// Field order is fixed per kind and blank fields render as empty values, so
// the same record always produces the same text.
func Normalize(content *model.Content) string {
	switch content.Kind {
	case model.KindProject:
		p := content.Project
		return joinLines(
			"Title: "+p.Title,
			"Description: "+p.Description,
			"Category: "+p.CategoryDisplay(),
			"Role: "+p.Role,
			"Client: "+p.Client,
			"Problem: "+p.ProblemStatement,
			"Solution: "+p.SolutionOverview,
			"Case Study: "+p.DetailedCaseStudy,
			"Technologies: "+strings.Join(p.TechnologiesUsed, ", "),
			"Tags: "+strings.Join(p.Tags, ", "),
			"Achievements: "+strings.Join(p.KeyAchievements, " "),
		)
	case model.KindSkill:
		s := content.Skill
		return joinLines(
			"Skill: "+s.Name,
			"Category: "+s.CategoryDisplay(),
			"Proficiency: "+s.ProficiencyDisplay(),
			fmt.Sprintf("Experience: %d years", s.YearsOfExperience),
			"Description: "+s.Description,
		)
	case model.KindExperience:
		e := content.Experience
		return joinLines(
			"Title: "+e.Title,
			"Organization: "+e.Organization,
			"Type: "+e.TypeDisplay(),
			"Location: "+e.Location,
			"Duration: "+e.DateRange(),
			"Description: "+e.Description,
			"Achievements: "+strings.Join(e.KeyAchievements, " "),
		)
	case model.KindPersonalInfo:
		i := content.PersonalInfo
		return joinLines(
			"Name: "+i.Name,
			"Title: "+i.Title,
			"Bio: "+i.Bio,
			"Location: "+i.Location,
			fmt.Sprintf("Experience: %d years", i.YearsOfExperience),
			"Availability: "+i.AvailabilityStatus,
			"Design Philosophy: "+i.DesignPhilosophy,
			"Career Goals: "+i.CareerGoals,
			"Fun Facts: "+strings.Join(i.FunFacts, " "),
		)
	case model.KindTestimonial:
		t := content.Testimonial
		return joinLines(
			fmt.Sprintf("Testimonial from %s, %s at %s:", t.AuthorName, t.AuthorTitle, t.AuthorCompany),
			t.Content,
			fmt.Sprintf("Rating: %d/5 stars", t.Rating),
		)
	case model.KindFAQ:
		f := content.FAQ
		return joinLines(
			"Question: "+f.Question,
			"Category: "+f.Category,
			"Answer: "+f.Answer,
		)
	}
	return ""
}

// FormatForContext renders a record as a labeled block for the LLM prompt.
// Unlike Normalize it includes display-only fields such as media URLs, so
// the model knows what exists even though media surfacing happens in the
// enhancer.
func FormatForContext(content *model.Content) string {
	switch content.Kind {
	case model.KindProject:
		p := content.Project
		return joinLines(
			"PROJECT: "+p.Title,
			"Category: "+p.CategoryDisplay(),
			"Role: "+p.Role,
			"Client: "+p.Client,
			"Description: "+p.Description,
			"Problem: "+p.ProblemStatement,
			"Solution: "+p.SolutionOverview,
			"Technologies: "+strings.Join(p.TechnologiesUsed, ", "),
			"Key Achievements: "+strings.Join(p.KeyAchievements, " "),
			"Live URL: "+p.LiveURL,
			"GitHub: "+p.GithubURL,
			"Featured Image: "+p.FeaturedImage,
			"Gallery Images: "+strings.Join(p.GalleryImages, ", "),
			"Video: "+p.VideoURL,
			"Prototype: "+p.PrototypeURL,
		)
	case model.KindSkill:
		s := content.Skill
		return joinLines(
			"SKILL: "+s.Name,
			"Category: "+s.CategoryDisplay(),
			"Proficiency: "+s.ProficiencyDisplay(),
			fmt.Sprintf("Years of Experience: %d", s.YearsOfExperience),
			"Description: "+s.Description,
		)
	case model.KindExperience:
		e := content.Experience
		return joinLines(
			fmt.Sprintf("EXPERIENCE: %s at %s", e.Title, e.Organization),
			"Type: "+e.TypeDisplay(),
			"Duration: "+e.DateRange(),
			"Location: "+e.Location,
			"Description: "+e.Description,
			"Key Achievements: "+strings.Join(e.KeyAchievements, " "),
		)
	case model.KindPersonalInfo:
		i := content.PersonalInfo
		return joinLines(
			"PERSONAL INFO:",
			"Name: "+i.Name,
			"Title: "+i.Title,
			"Bio: "+i.Bio,
			"Location: "+i.Location,
			fmt.Sprintf("Years of Experience: %d", i.YearsOfExperience),
			"Availability: "+i.AvailabilityStatus,
			"Design Philosophy: "+i.DesignPhilosophy,
			"Career Goals: "+i.CareerGoals,
			"Fun Facts: "+strings.Join(i.FunFacts, " "),
			"LinkedIn: "+i.LinkedinURL,
			"GitHub: "+i.GithubURL,
			"Portfolio: "+i.PortfolioURL,
		)
	case model.KindTestimonial:
		t := content.Testimonial
		return joinLines(
			fmt.Sprintf("TESTIMONIAL from %s (%s at %s):", t.AuthorName, t.AuthorTitle, t.AuthorCompany),
			fmt.Sprintf("%q", t.Content),
			fmt.Sprintf("Rating: %d/5 stars", t.Rating),
		)
	case model.KindFAQ:
		f := content.FAQ
		return joinLines(
			"FAQ: "+f.Question,
			"Answer: "+f.Answer,
		)
	}
	return ""
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
