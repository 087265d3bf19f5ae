package domain

// Artisan is a service provider listed in the directory. The backend assigns ID.
type Artisan struct {
	ID            int      `json:"id,omitempty"`
	Name          string   `json:"name"`
	Skill         string   `json:"skill"`
	Location      string   `json:"location"`
	Phone         string   `json:"phone"`
	Experience    string   `json:"experience"`
	Description   string   `json:"description,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	CompletedJobs *int     `json:"completedJobs,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
}

// Skills lists the selectable skills, sentinel first.
var Skills = []string{
	AllSkills,
	"Carpenter",
	"Plumber",
	"Mason",
	"Electrician",
	"Mechanic",
	"Tailor",
	"Painter",
	"Welder",
}

// Locations lists the suggested locations, sentinel first.
var Locations = []string{
	AllLocations,
	"Nairobi",
	"Mombasa",
	"Kisumu",
	"Nakuru",
	"Eldoret",
	"Thika",
	"Malindi",
}
