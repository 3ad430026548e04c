package domain

import "strings"

// Skill represents one skill name and proficiency percentage.
type Skill struct {
	Name  string
	Level int
}

// SkillGroup represents one skill category card.
type SkillGroup struct {
	ID     string
	Name   string
	Accent string
	Skills []Skill
}

// NewSkillGroup validates one skill group and its skill levels.
func NewSkillGroup(id, name, accent string, skills []Skill) (SkillGroup, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return SkillGroup{}, ErrInvalidID
	}
	if name == "" {
		return SkillGroup{}, ErrInvalidName
	}
	normalized := make([]Skill, 0, len(skills))
	for _, skill := range skills {
		skill.Name = strings.TrimSpace(skill.Name)
		if skill.Name == "" {
			return SkillGroup{}, ErrInvalidName
		}
		if skill.Level < 0 || skill.Level > 100 {
			return SkillGroup{}, ErrInvalidLevel
		}
		normalized = append(normalized, skill)
	}
	return SkillGroup{
		ID:     id,
		Name:   name,
		Accent: strings.TrimSpace(accent),
		Skills: normalized,
	}, nil
}

// EntryID returns the stable skill-group identity.
func (g SkillGroup) EntryID() string {
	return g.ID
}

// EntryCategory returns the group name; each group is its own category.
func (g SkillGroup) EntryCategory() string {
	return g.Name
}

// ClampLevel bounds a percentage to 0..100.
func ClampLevel(level int) int {
	switch {
	case level < 0:
		return 0
	case level > 100:
		return 100
	default:
		return level
	}
}
