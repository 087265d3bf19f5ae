package components

// NavLink is one navigation entry.
type NavLink struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Navbar is the top navigation for the current path.
type Navbar struct {
	Brand    string    `json:"brand"`
	Links    []NavLink `json:"links"`
	Actions  []NavLink `json:"actions"`
	SignedIn bool      `json:"signedIn"`
}

var navLinks = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Search", Path: "/search"},
	{Label: "Admin", Path: "/admin"},
}

// NewNavbar marks the link matching path as active. Signed-in visitors get Logout
// instead of Login/Register.
func NewNavbar(path string, signedIn bool) Navbar {
	links := make([]NavLink, 0, len(navLinks))
	for _, l := range navLinks {
		l.Active = l.Path == path
		links = append(links, l)
	}

	var actions []NavLink
	if signedIn {
		actions = []NavLink{{Label: "Logout", Path: "/logout"}}
	} else {
		actions = []NavLink{
			{Label: "Login", Path: "/login", Active: path == "/login"},
			{Label: "Register", Path: "/register", Active: path == "/register"},
		}
	}

	return Navbar{
		Brand:    "Artisan Finder",
		Links:    links,
		Actions:  actions,
		SignedIn: signedIn,
	}
}
