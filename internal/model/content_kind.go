package model

// ContentKind identifies which portfolio table an embedding row points at.
// The set is closed; every per-kind switch in the rag package must cover it.
type ContentKind string

const (
	KindProject      ContentKind = "project"
	KindSkill        ContentKind = "skill"
	KindExperience   ContentKind = "experience"
	KindPersonalInfo ContentKind = "personal_info"
	KindTestimonial  ContentKind = "testimonial"
	KindFAQ          ContentKind = "faq"
)

// AllContentKinds lists every kind in indexing order.
var AllContentKinds = []ContentKind{
	KindProject,
	KindSkill,
	KindExperience,
	KindPersonalInfo,
	KindTestimonial,
	KindFAQ,
}

// Valid reports whether k is a known content kind.
func (k ContentKind) Valid() bool {
	switch k {
	case KindProject, KindSkill, KindExperience, KindPersonalInfo, KindTestimonial, KindFAQ:
		return true
	}
	return false
}

// Content is the resolved record behind an embedding entry. Exactly one
// pointer is non-nil, matching Kind.
type Content struct {
	Kind         ContentKind
	Project      *Project
	Skill        *Skill
	Experience   *Experience
	PersonalInfo *PersonalInfo
	Testimonial  *Testimonial
	FAQ          *FAQ
}
