package entity

import (
	"strings"
	"unicode"
)

// Icon identifies a fact icon from a fixed set.
// The zero value IconNone renders nothing.
type Icon string

const (
	IconNone          Icon = ""
	IconMapPin        Icon = "map-pin"
	IconUsers         Icon = "users"
	IconUser          Icon = "user"
	IconGlobe         Icon = "globe"
	IconDollarSign    Icon = "dollar-sign"
	IconCoins         Icon = "coins"
	IconBanknote      Icon = "banknote"
	IconTrendingUp    Icon = "trending-up"
	IconBuilding      Icon = "building"
	IconLandmark      Icon = "landmark"
	IconFlag          Icon = "flag"
	IconGraduationCap Icon = "graduation-cap"
	IconBookOpen      Icon = "book-open"
	IconAward         Icon = "award"
	IconHeart         Icon = "heart"
	IconUtensils      Icon = "utensils"
	IconShip          Icon = "ship"
	IconPlane         Icon = "plane"
	IconLanguages     Icon = "languages"
	IconCalendar      Icon = "calendar"
	IconShield        Icon = "shield"
	IconCPU           Icon = "cpu"
	IconLeaf          Icon = "leaf"
	IconSun           Icon = "sun"
	IconCloudRain     Icon = "cloud-rain"
	IconThermometer   Icon = "thermometer"
	IconBriefcase     Icon = "briefcase"
	IconScale         Icon = "scale"
	IconStar          Icon = "star"
)

var knownIcons = map[Icon]struct{}{
	IconMapPin: {}, IconUsers: {}, IconUser: {}, IconGlobe: {}, IconDollarSign: {},
	IconCoins: {}, IconBanknote: {}, IconTrendingUp: {}, IconBuilding: {},
	IconLandmark: {}, IconFlag: {}, IconGraduationCap: {}, IconBookOpen: {},
	IconAward: {}, IconHeart: {}, IconUtensils: {}, IconShip: {}, IconPlane: {},
	IconLanguages: {}, IconCalendar: {}, IconShield: {}, IconCPU: {}, IconLeaf: {},
	IconSun: {}, IconCloudRain: {}, IconThermometer: {}, IconBriefcase: {},
	IconScale: {}, IconStar: {},
}

// Icons returns every known icon in a stable order.
func Icons() []Icon {
	return []Icon{
		IconMapPin, IconUsers, IconUser, IconGlobe, IconDollarSign, IconCoins,
		IconBanknote, IconTrendingUp, IconBuilding, IconLandmark, IconFlag,
		IconGraduationCap, IconBookOpen, IconAward, IconHeart, IconUtensils,
		IconShip, IconPlane, IconLanguages, IconCalendar, IconShield, IconCPU,
		IconLeaf, IconSun, IconCloudRain, IconThermometer, IconBriefcase,
		IconScale, IconStar,
	}
}

// Known reports whether i belongs to the icon set.
func (i Icon) Known() bool {
	_, ok := knownIcons[i]
	return ok
}

// ParseIcon resolves an icon name. Both kebab-case ("map-pin") and
// PascalCase ("MapPin") are accepted. Unknown names yield IconNone.
func ParseIcon(name string) Icon {
	icon := Icon(kebab(strings.TrimSpace(name)))
	if icon.Known() {
		return icon
	}
	return IconNone
}

func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prevLower := false
	for _, r := range s {
		switch {
		case r == '_' || r == ' ':
			b.WriteByte('-')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

var iconGlyphs = map[Icon]string{
	IconMapPin:        "📍",
	IconUsers:         "👥",
	IconUser:          "👤",
	IconGlobe:         "🌏",
	IconDollarSign:    "💲",
	IconCoins:         "🪙",
	IconBanknote:      "💵",
	IconTrendingUp:    "📈",
	IconBuilding:      "🏛",
	IconLandmark:      "🏙",
	IconFlag:          "🚩",
	IconGraduationCap: "🎓",
	IconBookOpen:      "📖",
	IconAward:         "🏆",
	IconHeart:         "❤",
	IconUtensils:      "🍴",
	IconShip:          "🚢",
	IconPlane:         "✈",
	IconLanguages:     "🗣",
	IconCalendar:      "📅",
	IconShield:        "🛡",
	IconCPU:           "💻",
	IconLeaf:          "🌿",
	IconSun:           "☀",
	IconCloudRain:     "🌧",
	IconThermometer:   "🌡",
	IconBriefcase:     "💼",
	IconScale:         "⚖",
	IconStar:          "⭐",
}

// Glyph returns a single-character pictogram for i, or "" for IconNone.
func (i Icon) Glyph() string {
	return iconGlyphs[i]
}
