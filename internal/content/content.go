// Package content loads and encodes portfolio documents.
package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanschultz/folio/internal/domain"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultDocument []byte

// Format names a supported document encoding.
type Format string

// Format values.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat reports an unknown document encoding.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// idNamespace seeds deterministic entry ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("folio:content"))

// ParseFormat maps a format label onto a Format.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Default returns the embedded portfolio.
func Default() (domain.Portfolio, error) {
	doc, err := Decode(defaultDocument, FormatTOML)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("decode embedded content: %w", err)
	}
	return doc.Portfolio()
}

// Load reads a portfolio from path, or the embedded default when path is empty.
func Load(path string) (domain.Portfolio, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	format, err := FormatForPath(path)
	if err != nil {
		return domain.Portfolio{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("read content %q: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("decode content %q: %w", path, err)
	}
	portfolio, err := doc.Portfolio()
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("content %q: %w", path, err)
	}
	return portfolio, nil
}

// Decode parses raw bytes in the given format.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// Encode writes the portfolio in the given format.
func Encode(w io.Writer, portfolio domain.Portfolio, format Format) error {
	doc := FromPortfolio(portfolio)
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// StableID derives a deterministic id for an entry without one.
func StableID(kind, title string) string {
	key := strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.ToLower(strings.TrimSpace(title))
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// Portfolio converts the document into a validated domain aggregate.
func (d Document) Portfolio() (domain.Portfolio, error) {
	out := domain.Portfolio{
		Owner: domain.Owner{
			Name:     d.Owner.Name,
			Initials: d.Owner.Initials,
			Headline: d.Owner.Headline,
			Tagline:  d.Owner.Tagline,
		},
		Socials: toLinks(d.Socials),
		Resume:  domain.Link{Label: strings.TrimSpace(d.Resume.Label), URL: strings.TrimSpace(d.Resume.URL)},
		About: domain.About{
			Heading:    strings.TrimSpace(d.About.Heading),
			Paragraphs: d.About.Paragraphs,
			Interests:  d.About.Interests,
		},
		Credit: d.Footer.Credit,
	}
	if out.Resume.Label == "" && out.Resume.URL != "" {
		out.Resume.Label = "Resume"
	}
	for _, edu := range d.About.Education {
		out.About.Education = append(out.About.Education, domain.Education(edu))
	}
	for _, role := range d.Experience.Roles {
		out.Experience.Roles = append(out.Experience.Roles, domain.Role(role))
	}
	for _, role := range d.Experience.Internships {
		out.Experience.Internships = append(out.Experience.Internships, domain.Role(role))
	}
	for idx, raw := range d.Projects {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			id = StableID("project", raw.Title)
		}
		project, err := domain.NewProject(domain.ProjectInput{
			ID:           id,
			Title:        raw.Title,
			Category:     raw.Category,
			Date:         raw.Date,
			Summary:      raw.Summary,
			Description:  raw.Description,
			Technologies: raw.Technologies,
			Features:     raw.Features,
			Repository:   raw.Repository,
			Demo:         raw.Demo,
			Image:        raw.Image,
		})
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("projects[%d]: %w", idx, err)
		}
		out.Projects = append(out.Projects, project)
	}
	for _, paper := range d.Publications.Papers {
		out.Publications.Papers = append(out.Publications.Papers, domain.Publication{
			Title:    paper.Title,
			Date:     paper.Date,
			Type:     paper.Type,
			Summary:  paper.Summary,
			Details:  paper.Details,
			Metrics:  toFields(paper.Metrics),
			Keywords: paper.Keywords,
			Links:    toLinks(paper.Links),
			Impact:   paper.Impact,
		})
	}
	for _, cert := range d.Publications.Certifications {
		out.Publications.Certifications = append(out.Publications.Certifications, domain.Certification(cert))
	}
	for _, resp := range d.Publications.Responsibilities {
		out.Publications.Responsibilities = append(out.Publications.Responsibilities, domain.Responsibility(resp))
	}
	for idx, raw := range d.Skills {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			id = StableID("skills", raw.Name)
		}
		skills := make([]domain.Skill, 0, len(raw.Items))
		for _, item := range raw.Items {
			skills = append(skills, domain.Skill(item))
		}
		group, err := domain.NewSkillGroup(id, raw.Name, raw.Accent, skills)
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("skills[%d]: %w", idx, err)
		}
		out.Skills = append(out.Skills, group)
	}
	for _, hack := range d.Hackathons {
		out.Hackathons = append(out.Hackathons, domain.Hackathon(hack))
	}
	out = out.Normalize()
	if err := out.Validate(); err != nil {
		return domain.Portfolio{}, err
	}
	return out, nil
}

// FromPortfolio converts a domain aggregate back into its document shape.
func FromPortfolio(p domain.Portfolio) Document {
	doc := Document{
		Owner: OwnerDoc{
			Name:     p.Owner.Name,
			Initials: p.Owner.Initials,
			Headline: p.Owner.Headline,
			Tagline:  p.Owner.Tagline,
		},
		Socials: fromLinks(p.Socials),
		Resume:  LinkDoc{Label: p.Resume.Label, URL: p.Resume.URL},
		About: AboutDoc{
			Heading:    p.About.Heading,
			Paragraphs: p.About.Paragraphs,
			Interests:  p.About.Interests,
		},
		Footer: FooterDoc{Credit: p.Credit},
	}
	for _, edu := range p.About.Education {
		doc.About.Education = append(doc.About.Education, EducationDoc(edu))
	}
	for _, role := range p.Experience.Roles {
		doc.Experience.Roles = append(doc.Experience.Roles, RoleDoc(role))
	}
	for _, role := range p.Experience.Internships {
		doc.Experience.Internships = append(doc.Experience.Internships, RoleDoc(role))
	}
	for _, project := range p.Projects {
		doc.Projects = append(doc.Projects, ProjectDoc{
			ID:           project.ID,
			Title:        project.Title,
			Category:     project.Category,
			Date:         project.Date,
			Summary:      project.Summary,
			Description:  project.Description,
			Technologies: project.Technologies,
			Features:     project.Features,
			Repository:   project.Repository.URL,
			Demo:         project.Demo.URL,
			Image:        project.Image,
		})
	}
	for _, paper := range p.Publications.Papers {
		doc.Publications.Papers = append(doc.Publications.Papers, PaperDoc{
			Title:    paper.Title,
			Date:     paper.Date,
			Type:     paper.Type,
			Summary:  paper.Summary,
			Details:  paper.Details,
			Metrics:  fromFields(paper.Metrics),
			Keywords: paper.Keywords,
			Links:    fromLinks(paper.Links),
			Impact:   paper.Impact,
		})
	}
	for _, cert := range p.Publications.Certifications {
		doc.Publications.Certifications = append(doc.Publications.Certifications, CertificationDoc(cert))
	}
	for _, resp := range p.Publications.Responsibilities {
		doc.Publications.Responsibilities = append(doc.Publications.Responsibilities, ResponsibilityDoc(resp))
	}
	for _, group := range p.Skills {
		items := make([]SkillDoc, 0, len(group.Skills))
		for _, skill := range group.Skills {
			items = append(items, SkillDoc(skill))
		}
		doc.Skills = append(doc.Skills, SkillGroupDoc{
			ID:     group.ID,
			Name:   group.Name,
			Accent: group.Accent,
			Items:  items,
		})
	}
	for _, hack := range p.Hackathons {
		doc.Hackathons = append(doc.Hackathons, HackathonDoc(hack))
	}
	return doc
}

// toLinks converts document links.
func toLinks(in []LinkDoc) []domain.Link {
	out := make([]domain.Link, 0, len(in))
	for _, link := range in {
		out = append(out, domain.Link{Label: link.Label, URL: link.URL})
	}
	return out
}

// fromLinks converts domain links.
func fromLinks(in []domain.Link) []LinkDoc {
	out := make([]LinkDoc, 0, len(in))
	for _, link := range in {
		out = append(out, LinkDoc{Label: link.Label, URL: link.URL})
	}
	return out
}

// toFields converts document metrics.
func toFields(in []FieldDoc) []domain.Field {
	out := make([]domain.Field, 0, len(in))
	for _, field := range in {
		out = append(out, domain.Field{Key: field.Key, Value: field.Value})
	}
	return out
}

// fromFields converts domain metrics.
func fromFields(in []domain.Field) []FieldDoc {
	out := make([]FieldDoc, 0, len(in))
	for _, field := range in {
		out = append(out, FieldDoc{Key: field.Key, Value: field.Value})
	}
	return out
}
