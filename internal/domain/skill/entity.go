package skill

// Resource is the learning suggestion stored for a single skill.
type Resource struct {
	Skill string
	Title string
	URL   string
}
