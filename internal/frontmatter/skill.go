package frontmatter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SkillMeta holds the frontmatter fields of a SKILL.md file that reports use.
type SkillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ReadSkillMeta decodes the skill frontmatter of content. ok is false when the
// document has no frontmatter.
func ReadSkillMeta(content []byte) (meta SkillMeta, ok bool, err error) {
	fm, _, had, err := Split(content)
	if err != nil {
		return SkillMeta{}, false, err
	}
	if !had || len(fm) == 0 {
		return SkillMeta{}, had, nil
	}
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return SkillMeta{}, true, fmt.Errorf("decode skill frontmatter: %w", err)
	}
	return meta, true, nil
}
