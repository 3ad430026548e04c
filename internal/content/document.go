package content

// Document is the on-disk content shape shared by every supported format.
type Document struct {
	Owner        OwnerDoc        `toml:"owner" yaml:"owner" json:"owner"`
	Socials      []LinkDoc       `toml:"socials" yaml:"socials" json:"socials"`
	Resume       LinkDoc         `toml:"resume" yaml:"resume" json:"resume"`
	About        AboutDoc        `toml:"about" yaml:"about" json:"about"`
	Experience   ExperienceDoc   `toml:"experience" yaml:"experience" json:"experience"`
	Projects     []ProjectDoc    `toml:"projects" yaml:"projects" json:"projects"`
	Publications PublicationsDoc `toml:"publications" yaml:"publications" json:"publications"`
	Skills       []SkillGroupDoc `toml:"skills" yaml:"skills" json:"skills"`
	Hackathons   []HackathonDoc  `toml:"hackathons" yaml:"hackathons" json:"hackathons"`
	Footer       FooterDoc       `toml:"footer" yaml:"footer" json:"footer"`
}

// OwnerDoc holds hero banner values.
type OwnerDoc struct {
	Name     string `toml:"name" yaml:"name" json:"name"`
	Initials string `toml:"initials,omitempty" yaml:"initials,omitempty" json:"initials,omitempty"`
	Headline string `toml:"headline" yaml:"headline" json:"headline"`
	Tagline  string `toml:"tagline" yaml:"tagline" json:"tagline"`
}

// LinkDoc holds one labelled link.
type LinkDoc struct {
	Label string `toml:"label" yaml:"label" json:"label"`
	URL   string `toml:"url" yaml:"url" json:"url"`
}

// FieldDoc holds one labelled metric.
type FieldDoc struct {
	Key   string `toml:"key" yaml:"key" json:"key"`
	Value string `toml:"value" yaml:"value" json:"value"`
}

// EducationDoc holds one education entry.
type EducationDoc struct {
	Degree    string `toml:"degree" yaml:"degree" json:"degree"`
	Institute string `toml:"institute" yaml:"institute" json:"institute"`
	Score     string `toml:"score" yaml:"score" json:"score"`
	Year      string `toml:"year" yaml:"year" json:"year"`
}

// AboutDoc holds bio values.
type AboutDoc struct {
	Heading    string         `toml:"heading" yaml:"heading" json:"heading"`
	Paragraphs []string       `toml:"paragraphs" yaml:"paragraphs" json:"paragraphs"`
	Interests  []string       `toml:"interests" yaml:"interests" json:"interests"`
	Education  []EducationDoc `toml:"education" yaml:"education" json:"education"`
}

// RoleDoc holds one job or internship.
type RoleDoc struct {
	Company      string   `toml:"company" yaml:"company" json:"company"`
	Position     string   `toml:"position" yaml:"position" json:"position"`
	Duration     string   `toml:"duration" yaml:"duration" json:"duration"`
	Location     string   `toml:"location,omitempty" yaml:"location,omitempty" json:"location,omitempty"`
	Description  string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Achievements []string `toml:"achievements,omitempty" yaml:"achievements,omitempty" json:"achievements,omitempty"`
	Skills       []string `toml:"skills,omitempty" yaml:"skills,omitempty" json:"skills,omitempty"`
	Impact       string   `toml:"impact,omitempty" yaml:"impact,omitempty" json:"impact,omitempty"`
}

// ExperienceDoc groups roles and internships.
type ExperienceDoc struct {
	Roles       []RoleDoc `toml:"roles" yaml:"roles" json:"roles"`
	Internships []RoleDoc `toml:"internships" yaml:"internships" json:"internships"`
}

// ProjectDoc holds one project card.
type ProjectDoc struct {
	ID           string   `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Title        string   `toml:"title" yaml:"title" json:"title"`
	Category     string   `toml:"category" yaml:"category" json:"category"`
	Date         string   `toml:"date" yaml:"date" json:"date"`
	Summary      string   `toml:"summary" yaml:"summary" json:"summary"`
	Description  string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Technologies []string `toml:"technologies" yaml:"technologies" json:"technologies"`
	Features     []string `toml:"features,omitempty" yaml:"features,omitempty" json:"features,omitempty"`
	Repository   string   `toml:"repository,omitempty" yaml:"repository,omitempty" json:"repository,omitempty"`
	Demo         string   `toml:"demo,omitempty" yaml:"demo,omitempty" json:"demo,omitempty"`
	Image        string   `toml:"image,omitempty" yaml:"image,omitempty" json:"image,omitempty"`
}

// PaperDoc holds one research paper.
type PaperDoc struct {
	Title    string     `toml:"title" yaml:"title" json:"title"`
	Date     string     `toml:"date" yaml:"date" json:"date"`
	Type     string     `toml:"type" yaml:"type" json:"type"`
	Summary  string     `toml:"summary" yaml:"summary" json:"summary"`
	Details  string     `toml:"details,omitempty" yaml:"details,omitempty" json:"details,omitempty"`
	Metrics  []FieldDoc `toml:"metrics,omitempty" yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Keywords []string   `toml:"keywords,omitempty" yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Links    []LinkDoc  `toml:"links,omitempty" yaml:"links,omitempty" json:"links,omitempty"`
	Impact   string     `toml:"impact,omitempty" yaml:"impact,omitempty" json:"impact,omitempty"`
}

// CertificationDoc holds one certification.
type CertificationDoc struct {
	Name   string `toml:"name" yaml:"name" json:"name"`
	Issuer string `toml:"issuer" yaml:"issuer" json:"issuer"`
	Date   string `toml:"date" yaml:"date" json:"date"`
	Type   string `toml:"type" yaml:"type" json:"type"`
}

// ResponsibilityDoc holds one position of responsibility.
type ResponsibilityDoc struct {
	Role         string `toml:"role" yaml:"role" json:"role"`
	Organization string `toml:"organization" yaml:"organization" json:"organization"`
	Duration     string `toml:"duration" yaml:"duration" json:"duration"`
	Description  string `toml:"description" yaml:"description" json:"description"`
}

// PublicationsDoc groups papers, certifications, and positions.
type PublicationsDoc struct {
	Papers           []PaperDoc          `toml:"papers" yaml:"papers" json:"papers"`
	Certifications   []CertificationDoc  `toml:"certifications" yaml:"certifications" json:"certifications"`
	Responsibilities []ResponsibilityDoc `toml:"responsibilities" yaml:"responsibilities" json:"responsibilities"`
}

// SkillDoc holds one skill level.
type SkillDoc struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Level int    `toml:"level" yaml:"level" json:"level"`
}

// SkillGroupDoc holds one skill category.
type SkillGroupDoc struct {
	ID     string     `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Name   string     `toml:"name" yaml:"name" json:"name"`
	Accent string     `toml:"accent,omitempty" yaml:"accent,omitempty" json:"accent,omitempty"`
	Items  []SkillDoc `toml:"items" yaml:"items" json:"items"`
}

// HackathonDoc holds one competition entry.
type HackathonDoc struct {
	Name         string   `toml:"name" yaml:"name" json:"name"`
	Date         string   `toml:"date" yaml:"date" json:"date"`
	Category     string   `toml:"category" yaml:"category" json:"category"`
	Description  string   `toml:"description" yaml:"description" json:"description"`
	Achievement  string   `toml:"achievement" yaml:"achievement" json:"achievement"`
	Technologies []string `toml:"technologies" yaml:"technologies" json:"technologies"`
}

// FooterDoc holds the page credit line.
type FooterDoc struct {
	Credit string `toml:"credit" yaml:"credit" json:"credit"`
}
