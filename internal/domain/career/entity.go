package career

type Career struct {
	ID   int64
	Name string
}

// WithSkills is a career together with its required skill set.
type WithSkills struct {
	Career
	Skills []string
}
