// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up      string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down    string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Prev    string `yaml:"prev" kong:"help='Previous entry key',default='h,left'"`
	Next    string `yaml:"next" kong:"help='Next entry key',default='l,right'"`
	Latest  string `yaml:"latest" kong:"help='Jump to latest entry key',default='L'"`
	Random  string `yaml:"random" kong:"help='Jump to random entry key',default='r'"`
	Goto    string `yaml:"goto" kong:"help='Go to entry prompt key',default='g'"`
	Recent  string `yaml:"recent" kong:"help='Toggle recent list focus key',default='tab'"`
	Open    string `yaml:"open" kong:"help='Open in browser key',default='o'"`
	Image   string `yaml:"image" kong:"help='Toggle inline image preview key',default='i'"`
	Back    string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit    string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh string `yaml:"refresh" kong:"help='Refetch current entry key',default='R'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Dim    string `yaml:"dim" kong:"help='Dimmed text color',default='240'"`
}

// Settings represents the application configuration.
type Settings struct {
	APIBaseURL     string       `yaml:"api_base_url" kong:"help='Archive API base URL, or a proxy prefix in front of it',default='https://xkcd.com'"`
	SiteURL        string       `yaml:"site_url" kong:"help='Public site URL used for browser links',default='https://xkcd.com'"`
	FeedURL        string       `yaml:"feed_url" kong:"help='Atom feed listing recent entries (empty disables the recent list)',default='https://xkcd.com/atom.xml'"`
	TimeoutSeconds int          `yaml:"timeout_seconds" kong:"help='HTTP timeout in seconds',default='10'"`
	Seed           int64        `yaml:"seed" kong:"help='Random seed (0 draws from the clock)',default='0'"`
	KeyMap         KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme          ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
}

// Timeout returns the HTTP timeout as a duration.
func (s Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}
