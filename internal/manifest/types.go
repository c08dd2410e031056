package manifest

// FileName is the manifest file inside every skill directory.
const FileName = "SKILL.md"

// RequiredSections are the H2 headings a skill manifest must contain, in order.
var RequiredSections = []string{
	"Name",
	"Description",
	"Trigger Conditions",
	"Files",
}

// Frontmatter is the typed view of a manifest's YAML header.
type Frontmatter struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Heading is one markdown heading in document order.
type Heading struct {
	Level int
	Text  string
}

// Document is a parsed SKILL.md.
type Document struct {
	Frontmatter Frontmatter
	// Meta is the raw frontmatter; nil when the document has none.
	Meta     map[string]interface{}
	Headings []Heading
}

// Title returns the text of the first H1, or "" if there is none.
func (d *Document) Title() string {
	for _, h := range d.Headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

// Sections returns the H2 heading texts in document order.
func (d *Document) Sections() []string {
	var sections []string
	for _, h := range d.Headings {
		if h.Level == 2 {
			sections = append(sections, h.Text)
		}
	}
	return sections
}
