package activities

// DefaultCatalog is the set of activities the registry starts with.
func DefaultCatalog() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball",
			Description:     "Team basketball practice and games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Tennis coaching and competitive matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing, and visual arts exploration",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Music Ensemble",
			Description:     "Learn instruments and perform in concerts",
			Schedule:        "Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"aiden@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop argumentation skills and compete in debates",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"grace@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Explore science experiments and scientific inquiry",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu"},
		},
	}
}
