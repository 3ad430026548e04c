package domain

import (
	"fmt"
	"strings"
)

// Owner represents the hero banner identity.
type Owner struct {
	Name     string
	Initials string
	Headline string
	Tagline  string
}

// Education represents one education timeline entry.
type Education struct {
	Degree    string
	Institute string
	Score     string
	Year      string
}

// About represents the bio section content.
type About struct {
	Heading    string
	Paragraphs []string
	Interests  []string
	Education  []Education
}

// Role represents one job or internship entry.
type Role struct {
	Company      string
	Position     string
	Duration     string
	Location     string
	Description  string
	Achievements []string
	Skills       []string
	Impact       string
}

// Experience groups full-time roles and internships.
type Experience struct {
	Roles       []Role
	Internships []Role
}

// Publication represents one research paper entry.
type Publication struct {
	Title    string
	Date     string
	Type     string
	Summary  string
	Details  string
	Metrics  []Field
	Keywords []string
	Links    []Link
	Impact   string
}

// Certification represents one certification entry.
type Certification struct {
	Name   string
	Issuer string
	Date   string
	Type   string
}

// Responsibility represents one position of responsibility.
type Responsibility struct {
	Role         string
	Organization string
	Duration     string
	Description  string
}

// Publications groups papers, certifications, and positions.
type Publications struct {
	Papers           []Publication
	Certifications   []Certification
	Responsibilities []Responsibility
}

// Hackathon represents one competition entry.
type Hackathon struct {
	Name         string
	Date         string
	Category     string
	Description  string
	Achievement  string
	Technologies []string
}

// Portfolio is the immutable content aggregate rendered by every surface.
type Portfolio struct {
	Owner        Owner
	Socials      []Link
	Resume       Link
	About        About
	Experience   Experience
	Projects     []Project
	Publications Publications
	Skills       []SkillGroup
	Hackathons   []Hackathon
	Credit       string
}

// Normalize trims free-text content and drops empty list entries.
func (p Portfolio) Normalize() Portfolio {
	p.Owner.Name = strings.TrimSpace(p.Owner.Name)
	p.Owner.Initials = strings.TrimSpace(p.Owner.Initials)
	p.Owner.Headline = strings.TrimSpace(p.Owner.Headline)
	p.Owner.Tagline = strings.TrimSpace(p.Owner.Tagline)
	if p.Owner.Initials == "" {
		p.Owner.Initials = initialsOf(p.Owner.Name)
	}
	p.Socials = normalizeLinks(p.Socials)
	p.About.Paragraphs = normalizeList(p.About.Paragraphs)
	p.About.Interests = normalizeList(p.About.Interests)
	for i := range p.Experience.Roles {
		p.Experience.Roles[i] = normalizeRole(p.Experience.Roles[i])
	}
	for i := range p.Experience.Internships {
		p.Experience.Internships[i] = normalizeRole(p.Experience.Internships[i])
	}
	for i := range p.Publications.Papers {
		paper := p.Publications.Papers[i]
		paper.Metrics = normalizeFields(paper.Metrics)
		paper.Keywords = normalizeList(paper.Keywords)
		paper.Links = normalizeLinks(paper.Links)
		p.Publications.Papers[i] = paper
	}
	for i := range p.Hackathons {
		p.Hackathons[i].Technologies = normalizeList(p.Hackathons[i].Technologies)
	}
	p.Credit = strings.TrimSpace(p.Credit)
	return p
}

// Validate checks the aggregate-level invariants that single constructors cannot.
func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Owner.Name) == "" {
		return fmt.Errorf("owner: %w", ErrInvalidName)
	}
	seen := map[string]struct{}{}
	for idx, project := range p.Projects {
		if project.ID == "" {
			return fmt.Errorf("projects[%d]: %w", idx, ErrInvalidID)
		}
		if _, ok := seen[project.ID]; ok {
			return fmt.Errorf("projects[%d] %q: %w", idx, project.ID, ErrDuplicateID)
		}
		seen[project.ID] = struct{}{}
	}
	seen = map[string]struct{}{}
	for idx, group := range p.Skills {
		if group.ID == "" {
			return fmt.Errorf("skills[%d]: %w", idx, ErrInvalidID)
		}
		if _, ok := seen[group.ID]; ok {
			return fmt.Errorf("skills[%d] %q: %w", idx, group.ID, ErrDuplicateID)
		}
		seen[group.ID] = struct{}{}
	}
	return nil
}

// ProjectByRef finds a project by exact id or case-insensitive title.
func (p Portfolio) ProjectByRef(ref string) (Project, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Project{}, false
	}
	for _, project := range p.Projects {
		if project.ID == ref {
			return project, true
		}
	}
	for _, project := range p.Projects {
		if strings.EqualFold(project.Title, ref) {
			return project, true
		}
	}
	return Project{}, false
}

// ContactLinks returns socials that are not phone numbers, used by the footer.
func (p Portfolio) ContactLinks() []Link {
	out := make([]Link, 0, len(p.Socials))
	for _, link := range p.Socials {
		if strings.HasPrefix(strings.ToLower(link.URL), "tel:") {
			continue
		}
		out = append(out, link)
	}
	return out
}

// normalizeRole trims one experience entry.
func normalizeRole(r Role) Role {
	r.Company = strings.TrimSpace(r.Company)
	r.Position = strings.TrimSpace(r.Position)
	r.Duration = strings.TrimSpace(r.Duration)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	r.Impact = strings.TrimSpace(r.Impact)
	r.Achievements = normalizeList(r.Achievements)
	r.Skills = normalizeList(r.Skills)
	return r
}

// initialsOf derives up to two initials from a display name.
func initialsOf(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := []rune(parts[0])
	out := strings.ToUpper(string(first[0]))
	if len(parts) > 1 {
		last := []rune(parts[len(parts)-1])
		out += strings.ToUpper(string(last[0]))
	}
	return out
}
