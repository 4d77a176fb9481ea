package settings

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"novelverse/internal/reader"
	"novelverse/pkg/models"
)

type Section string

const (
	SectionProfile       Section = "profile"
	SectionNotifications Section = "notifications"
	SectionReading       Section = "reading"
	SectionPrivacy       Section = "privacy"
)

var Sections = []Section{SectionProfile, SectionNotifications, SectionReading, SectionPrivacy}

var ErrUnknownSection = errors.New("unknown settings section")

func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Sections, sec) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return sec, nil
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	DigestOptions = []Option{
		{Value: "never", Label: "Never"},
		{Value: "daily", Label: "Daily"},
		{Value: "weekly", Label: "Weekly"},
		{Value: "monthly", Label: "Monthly"},
	}
	FontSizeOptions = []Option{
		{Value: "14", Label: "Small (14px)"},
		{Value: "16", Label: "Medium (16px)"},
		{Value: "18", Label: "Large (18px)"},
		{Value: "20", Label: "Extra Large (20px)"},
	}
	FontFamilyOptions = []Option{
		{Value: "serif", Label: "Serif (Playfair Display)"},
		{Value: "sans", Label: "Sans-serif (Inter)"},
		{Value: "mono", Label: "Monospace"},
	}
	ThemeOptions = []Option{
		{Value: "auto", Label: "Auto"},
		{Value: "light", Label: "Light"},
		{Value: "dark", Label: "Dark"},
	}
	VisibilityOptions = []Option{
		{Value: "public", Label: "Public"},
		{Value: "friends", Label: "Friends Only"},
		{Value: "private", Label: "Private"},
	}
	MessageOptions = []Option{
		{Value: "everyone", Label: "Everyone"},
		{Value: "friends", Label: "Friends Only"},
		{Value: "nobody", Label: "Nobody"},
	}
)

func hasOption(opts []Option, v string) bool {
	return slices.ContainsFunc(opts, func(o Option) bool { return o.Value == v })
}

// Defaults is the account's settings as first loaded.
func Defaults() models.Settings {
	return models.Settings{
		Profile: models.ProfileSettings{
			Username:    "BookwormExtraordinaire",
			DisplayName: "Alex Chen",
			Email:       "alex.chen@example.com",
			Bio:         "Passionate reader and aspiring author. I love diving into fantasy worlds and crafting my own magical stories.",
			Location:    "San Francisco, CA",
		},
		Notifications: models.NotificationSettings{
			NewChapters:     true,
			NovelUpdates:    true,
			Reviews:         true,
			Followers:       true,
			Recommendations: false,
			Newsletter:      true,
			EmailDigest:     "weekly",
		},
		Reading: models.ReadingSettings{
			FontSize:         18,
			FontFamily:       "serif",
			LineHeight:       1.8,
			Theme:            "auto",
			AutoBookmark:     true,
			ReadingReminders: true,
		},
		Privacy: models.PrivacySettings{
			ProfileVisibility:     "public",
			ReadingHistoryVisible: true,
			ShowOnlineStatus:      true,
			AllowMessages:         "friends",
		},
	}
}

// ValidationError names the field that failed.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

func invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

func validateProfile(p models.ProfileSettings) error {
	if strings.TrimSpace(p.Username) == "" {
		return invalid("username", "required")
	}
	if !strings.Contains(p.Email, "@") {
		return invalid("email", "invalid email")
	}
	return nil
}

func validateNotifications(n models.NotificationSettings) error {
	if !hasOption(DigestOptions, n.EmailDigest) {
		return invalid("email_digest", "must be never, daily, weekly or monthly")
	}
	return nil
}

func validateReading(r models.ReadingSettings) error {
	if !hasOption(FontSizeOptions, fmt.Sprint(r.FontSize)) {
		return invalid("font_size", "must be 14, 16, 18 or 20")
	}
	if !hasOption(FontFamilyOptions, r.FontFamily) {
		return invalid("font_family", "must be serif, sans or mono")
	}
	if r.LineHeight < reader.MinLineHeight || r.LineHeight > reader.MaxLineHeight {
		return invalid("line_height", fmt.Sprintf("must be between %.1f and %.1f", reader.MinLineHeight, reader.MaxLineHeight))
	}
	if !hasOption(ThemeOptions, r.Theme) {
		return invalid("theme", "must be auto, light or dark")
	}
	return nil
}

func validatePrivacy(p models.PrivacySettings) error {
	if !hasOption(VisibilityOptions, p.ProfileVisibility) {
		return invalid("profile_visibility", "must be public, friends or private")
	}
	if !hasOption(MessageOptions, p.AllowMessages) {
		return invalid("allow_messages", "must be everyone, friends or nobody")
	}
	return nil
}
