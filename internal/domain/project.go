package domain

import "strings"

// Project represents one portfolio project card.
type Project struct {
	ID           string
	Title        string
	Category     string
	Date         string
	Summary      string
	Description  string
	Technologies []string
	Features     []string
	Repository   Link
	Demo         Link
	Image        string
}

// ProjectInput holds the raw values used to build a project.
type ProjectInput struct {
	ID           string
	Title        string
	Category     string
	Date         string
	Summary      string
	Description  string
	Technologies []string
	Features     []string
	Repository   string
	Demo         string
	Image        string
}

// NewProject validates and normalizes one project.
func NewProject(in ProjectInput) (Project, error) {
	id := strings.TrimSpace(in.ID)
	title := strings.TrimSpace(in.Title)
	category := strings.TrimSpace(in.Category)
	if id == "" {
		return Project{}, ErrInvalidID
	}
	if title == "" {
		return Project{}, ErrInvalidTitle
	}
	if category == "" {
		return Project{}, ErrInvalidCategory
	}
	p := Project{
		ID:           id,
		Title:        title,
		Category:     category,
		Date:         strings.TrimSpace(in.Date),
		Summary:      strings.TrimSpace(in.Summary),
		Description:  strings.TrimSpace(in.Description),
		Technologies: normalizeList(in.Technologies),
		Features:     normalizeList(in.Features),
		Image:        strings.TrimSpace(in.Image),
	}
	if repo := strings.TrimSpace(in.Repository); repo != "" {
		p.Repository = Link{Label: "Code", URL: repo}
	}
	if demo := strings.TrimSpace(in.Demo); demo != "" {
		p.Demo = Link{Label: "Live Demo", URL: demo}
	}
	return p, nil
}

// EntryID returns the stable project identity.
func (p Project) EntryID() string {
	return p.ID
}

// EntryCategory returns the project category tag.
func (p Project) EntryCategory() string {
	return p.Category
}

// Links returns the non-empty outbound links for the project.
func (p Project) Links() []Link {
	out := make([]Link, 0, 2)
	if p.Repository.URL != "" {
		out = append(out, p.Repository)
	}
	if p.Demo.URL != "" {
		out = append(out, p.Demo)
	}
	return out
}

// LongDescription returns the detail text, falling back to the summary.
func (p Project) LongDescription() string {
	if p.Description != "" {
		return p.Description
	}
	return p.Summary
}
