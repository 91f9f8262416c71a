// Package content is the static copy of the portfolio: who it is about,
// the skills grid and the project showcase. User-facing text is stored
// as i18n keys.
package content

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/counter"
	"github.com/Zachkp/folio/internal/i18n"
)

const Owner = "Abdellah Boussaha"

var ErrUnknownProject = errors.New("content: unknown project")

var Links = struct {
	GitHub   string
	LinkedIn string
}{
	GitHub:   "https://github.com",
	LinkedIn: "https://linkedin.com",
}

// CVPath is the downloadable CV for lang.
func CVPath(lang i18n.Language) string {
	return "/cv/abdellah-boussaha-cv-" + string(lang) + ".pdf"
}

type Skill struct {
	Name string
	Icon string
}

var Skills = []Skill{
	{"Flutter", "SiFlutter"},
	{"Kotlin", "SiKotlin"},
	{"Java", "DiJava"},
	{"HTML/CSS", "SiHtml5"},
	{"JavaScript", "SiJavascript"},
	{"Unity", "SiUnity"},
	{"Firebase", "SiFirebase"},
	{"SQL", "SiMysql"},
	{"Git", "SiGit"},
	{"Vue.js", "SiVuedotjs"},
	{"C++", "SiCplusplus"},
	{"PHP", "SiPhp"},
}

type Stat struct {
	Value    float64
	Decimals int
	Suffix   string
	Label    string // i18n key
	Icon     string
}

func (s Stat) Counter() counter.Counter {
	return counter.Counter{Target: s.Value, Decimals: s.Decimals, Suffix: s.Suffix}
}

type Project struct {
	ID     string
	Key    string // i18n key segment, projects.<Key>.*
	Images []carousel.Image
	Stats  []Stat
	Tags   []string
	Repo   string
}

const featureCount = 4

func (p Project) key(field string) string { return "projects." + p.Key + "." + field }

func (p Project) TitleKey() string           { return p.key("title") }
func (p Project) DescriptionKey() string     { return p.key("description") }
func (p Project) LongDescriptionKey() string { return p.key("longDescription") }

func (p Project) FeatureKeys() []string {
	keys := make([]string, featureCount)
	for i := range keys {
		keys[i] = p.key("features." + strconv.Itoa(i))
	}
	return keys
}

// ProjectByID looks a project up by the slug used in URLs.
func ProjectByID(id string) (Project, error) {
	for _, p := range Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, id)
}

func img(src, alt string) carousel.Image {
	return carousel.Image{Src: "/images/" + src, Alt: alt}
}

var Projects = []Project{
	{
		ID:  "cinelist",
		Key: "cineList",
		Images: []carousel.Image{
			img("cinelist-home.png", "CineList home screen showing featured shows and new episodes"),
			img("cinelist-browse.png", "CineList browse screen showing anime and TV shows"),
			img("cinelist-show-details.png", "CineList show details screen with episode information"),
			img("cinelist-wwe.png", "CineList detailed view of WWE Raw with show information"),
		},
		Stats: []Stat{
			{Value: 15000, Label: "projects.cineList.stats.users", Icon: "users"},
			{Value: 250000, Label: "projects.cineList.stats.movies", Icon: "server"},
			{Value: 4.8, Decimals: 1, Suffix: "/5", Label: "projects.cineList.stats.rating", Icon: "star"},
			{Value: 98, Suffix: "%", Label: "projects.cineList.stats.satisfaction", Icon: "trophy"},
		},
		Tags: []string{"Kotlin", "Flutter", "Firebase", "Multilingual"},
		Repo: "https://github.com",
	},
	{
		ID:  "planty",
		Key: "planty",
		Images: []carousel.Image{
			img("planty-dashboard.png", "Planty dashboard showing list of plants with their watering modes"),
			img("planty-history.png", "Planty watering history screen showing automatic and manual watering events"),
			img("planty-account.png", "Planty account settings with notification preferences"),
			img("planty-login.png", "Planty login screen with email and password fields"),
		},
		Stats: []Stat{
			{Value: 5000, Label: "projects.planty.stats.devices", Icon: "server"},
			{Value: 30, Suffix: "%", Label: "projects.planty.stats.waterSaved", Icon: "leaf"},
			{Value: 12500, Label: "projects.planty.stats.plants", Icon: "leaf"},
			{Value: 99.7, Decimals: 1, Suffix: "%", Label: "projects.planty.stats.uptime", Icon: "zap"},
		},
		Tags: []string{"IoT", "ESP32", "Firebase", "Arduino", "Multilingual"},
		Repo: "https://github.com",
	},
	{
		ID:  "barrier",
		Key: "barrier",
		Images: []carousel.Image{
			img("barrier-screentime.png", "Barrier screen time monitoring dashboard showing app usage statistics"),
			img("barrier-location.png", "Barrier location tracking feature showing child's location on a map"),
			img("barrier-request-time.png", "Barrier screen time request feature for children to request additional time"),
			img("barrier-login.png", "Barrier app login screen with secure authentication"),
		},
		Stats: []Stat{
			{Value: 8500, Label: "projects.barrier.stats.families", Icon: "users"},
			{Value: 25, Suffix: "%", Label: "projects.barrier.stats.screenReduction", Icon: "clock"},
			{Value: 1250, Label: "projects.barrier.stats.locationsTracked", Icon: "map-pin"},
			{Value: 98.2, Decimals: 1, Suffix: "%", Label: "projects.barrier.stats.alertAccuracy", Icon: "bell"},
		},
		Tags: []string{"Flutter", "Dart", "Firebase", "Maps API", "Real-time"},
		Repo: "https://github.com",
	},
	{
		ID:  "zombie-sheriff",
		Key: "game",
		Images: []carousel.Image{
			img("zombie-sheriff-gameplay.png", "Zombie Sheriff gameplay showing the player fighting zombies"),
			img("zombie-sheriff-shield.png", "Zombie Sheriff special ability shield activation"),
			img("zombie-sheriff-gameover.png", "Zombie Sheriff game over screen showing survival time"),
			img("zombie-sheriff-unity.png", "Zombie Sheriff made with Unity splash screen"),
		},
		Stats: []Stat{
			{Value: 50000, Label: "projects.game.stats.downloads", Icon: "download"},
			{Value: 4.7, Decimals: 1, Suffix: "/5", Label: "projects.game.stats.rating", Icon: "star"},
			{Value: 45, Suffix: "m", Label: "projects.game.stats.avgPlaytime", Icon: "clock"},
			{Value: 12, Label: "projects.game.stats.levels", Icon: "gamepad"},
		},
		Tags: []string{"Unity", "C#", "Game Design", "Mobile"},
		Repo: "https://github.com",
	},
}
