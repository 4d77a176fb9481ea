package models

type ProfileSettings struct {
	Username    string `json:"username" yaml:"username"`
	DisplayName string `json:"display_name" yaml:"displayName"`
	Email       string `json:"email" yaml:"email"`
	Bio         string `json:"bio" yaml:"bio"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	Website     string `json:"website" yaml:"website"`
	Location    string `json:"location" yaml:"location"`
}

type NotificationSettings struct {
	NewChapters     bool   `json:"new_chapters" yaml:"newChapters"`
	NovelUpdates    bool   `json:"novel_updates" yaml:"novelUpdates"`
	Reviews         bool   `json:"reviews" yaml:"reviews"`
	Followers       bool   `json:"followers" yaml:"followers"`
	Recommendations bool   `json:"recommendations" yaml:"recommendations"`
	Newsletter      bool   `json:"newsletter" yaml:"newsletter"`
	EmailDigest     string `json:"email_digest" yaml:"emailDigest"`
}

type ReadingSettings struct {
	FontSize           int     `json:"font_size" yaml:"fontSize"`
	FontFamily         string  `json:"font_family" yaml:"fontFamily"`
	LineHeight         float64 `json:"line_height" yaml:"lineHeight"`
	Theme              string  `json:"theme" yaml:"theme"`
	AutoBookmark       bool    `json:"auto_bookmark" yaml:"autoBookmark"`
	ReadingReminders   bool    `json:"reading_reminders" yaml:"readingReminders"`
	DownloadForOffline bool    `json:"download_for_offline" yaml:"downloadForOffline"`
}

type PrivacySettings struct {
	ProfileVisibility     string `json:"profile_visibility" yaml:"profileVisibility"`
	ReadingHistoryVisible bool   `json:"reading_history_visible" yaml:"readingHistoryVisible"`
	ShowOnlineStatus      bool   `json:"show_online_status" yaml:"showOnlineStatus"`
	AllowMessages         string `json:"allow_messages" yaml:"allowMessages"`
	DataSaving            bool   `json:"data_saving" yaml:"dataSaving"`
}

// Settings is every section of the account settings page.
type Settings struct {
	Profile       ProfileSettings      `json:"profile" yaml:"profile"`
	Notifications NotificationSettings `json:"notifications" yaml:"notifications"`
	Reading       ReadingSettings      `json:"reading" yaml:"reading"`
	Privacy       PrivacySettings      `json:"privacy" yaml:"privacy"`
}
