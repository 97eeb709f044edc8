package riot

import "strings"

// routingByPlatform maps a platform (summoner/league/mastery host) to the
// regional routing value used by account-v1 and match-v5.
var routingByPlatform = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"kr":   "asia",
	"jp1":  "asia",
	"sg2":  "sea",
	"ph2":  "sea",
	"th2":  "sea",
	"tw2":  "sea",
	"vn2":  "sea",
}

// Routing returns the regional routing value for a platform, defaulting
// to americas for anything unmapped.
func Routing(platform string) string {
	if r, ok := routingByPlatform[strings.ToLower(platform)]; ok {
		return r
	}
	return "americas"
}

// ValidPlatform reports whether the platform string is a known host.
func ValidPlatform(platform string) bool {
	_, ok := routingByPlatform[strings.ToLower(platform)]
	return ok
}
