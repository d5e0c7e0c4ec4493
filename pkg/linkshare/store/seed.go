package store

import (
	"time"

	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

const day = 24 * time.Hour

type seedGroup struct {
	group models.NewGroup
	age   time.Duration
}

// demoGroups are loaded into an empty store at startup. Each is back-dated
// so listings are already ordered before anything is submitted.
var demoGroups = []seedGroup{
	{
		group: models.NewGroup{
			Name:        "Study Group: Mathematics",
			Description: "A community for mathematics students to share problems, solutions and study materials.",
			Category:    "education",
			Country:     "United States",
			Link:        "https://chat.whatsapp.com/example1",
			Owner:       "Math Teacher",
			Members:     250,
		},
		age: 30 * day,
	},
	{
		group: models.NewGroup{
			Name:        "Web Developers Community",
			Description: "Connect with web developers and designers. Share resources, tips and job opportunities.",
			Category:    "technology",
			Country:     "India",
			Link:        "https://chat.whatsapp.com/example2",
			Owner:       "Tech Lead",
			Members:     500,
		},
		age: 20 * day,
	},
	{
		group: models.NewGroup{
			Name:        "Movie Buffs Club",
			Description: "For cinephiles and movie enthusiasts. Discuss films, share recommendations and reviews.",
			Category:    "entertainment",
			Country:     "United Kingdom",
			Link:        "https://chat.whatsapp.com/example3",
			Owner:       "Film Director",
			Members:     350,
		},
		age: 15 * day,
	},
	{
		group: models.NewGroup{
			Name:        "Football Fans United",
			Description: "Connect with football fans worldwide. Discuss matches, transfers, and your favorite teams.",
			Category:    "sports",
			Country:     models.DefaultCountry,
			Link:        "https://chat.whatsapp.com/example4",
			Owner:       "Sports Commentator",
			Members:     1000,
		},
		age: 10 * day,
	},
	{
		group: models.NewGroup{
			Name:        "Entrepreneurs Network",
			Description: "A group for entrepreneurs to network, share ideas, and find potential business partners.",
			Category:    "business",
			Country:     "Canada",
			Link:        "https://chat.whatsapp.com/example5",
			Owner:       "Startup Founder",
			Members:     450,
		},
		age: 5 * day,
	},
	{
		group: models.NewGroup{
			Name:        "Fitness & Wellness",
			Description: "Share fitness tips, workout routines, nutrition advice and wellness practices.",
			Category:    "lifestyle",
			Country:     "Australia",
			Link:        "https://chat.whatsapp.com/example6",
			Owner:       "Fitness Coach",
			Members:     720,
		},
		age: 2 * day,
	},
}

// DemoGroupCount returns the number of records a seeded store starts with
func DemoGroupCount() int {
	return len(demoGroups)
}
