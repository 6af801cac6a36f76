package main

// Skill is one bar in the about section. Width is a CSS length.
type Skill struct {
	Name  string
	Width string
}

// Project is a card in the projects section.
type Project struct {
	Title   string
	Summary string
}

var (
	AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
	different language, experimenting with tools, or solving tricky problems.`

	Skills = []Skill{
		{Name: "Go", Width: "90%"},
		{Name: "HTML & CSS", Width: "85%"},
		{Name: "SQL", Width: "75%"},
		{Name: "Python", Width: "70%"},
	}

	Projects = []Project{
		{
			Title:   "Terminal Mail",
			Summary: "A terminal-based email client built in Go with fuzzy finding, using the Charmbracelet TUI framework and go-imap.",
		},
		{
			Title:   "Terminal Music",
			Summary: "A terminal music player with a TUI front end that drives yt-dlp and mpv for YouTube Music playback.",
		},
		{
			Title:   "Game Recommender",
			Summary: "A recommendation web app using TF-IDF vectors and cosine similarity, with interactive charts and review filters.",
		},
		{
			Title:   "This Portfolio",
			Summary: "A Go site served by Gin whose page behaviors are Go compiled to WebAssembly.",
		},
	}
)
