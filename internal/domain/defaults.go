package domain

// DefaultProjects returns the bootstrap project set every new user starts
// with. The ids only matter in the unpersisted (signed-out / memory) state;
// persisted copies get server-assigned ids.
func DefaultProjects() []Project {
	return []Project{
		{ID: "1", Name: "Personal", Color: "#9b87f5"},
		{ID: "2", Name: "Work", Color: "#33C3F0"},
		{ID: "3", Name: "Shopping", Color: "#F97316"},
	}
}
