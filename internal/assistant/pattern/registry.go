package pattern

// Websites maps canonical site names to the URL opened for a direct-open
// request. Read-only after initialization.
var Websites = map[string]string{
	"youtube":         "https://www.youtube.com",
	"google":          "https://www.google.com",
	"gmail":           "https://mail.google.com",
	"facebook":        "https://www.facebook.com",
	"twitter":         "https://www.twitter.com",
	"instagram":       "https://www.instagram.com",
	"linkedin":        "https://www.linkedin.com",
	"github":          "https://www.github.com",
	"stackoverflow":   "https://stackoverflow.com",
	"reddit":          "https://www.reddit.com",
	"amazon":          "https://www.amazon.com",
	"netflix":         "https://www.netflix.com",
	"spotify":         "https://open.spotify.com",
	"whatsapp":        "https://web.whatsapp.com",
	"discord":         "https://discord.com",
	"slack":           "https://slack.com",
	"zoom":            "https://zoom.us",
	"teams":           "https://teams.microsoft.com",
	"microsoft teams": "https://teams.microsoft.com",
	"google drive":    "https://drive.google.com",
	"google docs":     "https://docs.google.com",
	"google sheets":   "https://sheets.google.com",
	"dropbox":         "https://www.dropbox.com",
	"onedrive":        "https://onedrive.live.com",
	"wikipedia":       "https://www.wikipedia.org",
	"twitch":          "https://www.twitch.tv",
	"pinterest":       "https://www.pinterest.com",
	"tiktok":          "https://www.tiktok.com",
	"snapchat":        "https://web.snapchat.com",
}

// Abbreviations resolve shorthand names to Websites keys.
var Abbreviations = map[string]string{
	"yt":       "youtube",
	"fb":       "facebook",
	"ig":       "instagram",
	"gh":       "github",
	"so":       "stackoverflow",
	"aws":      "amazon",
	"ms teams": "microsoft teams",
	"drive":    "google drive",
	"docs":     "google docs",
	"sheets":   "google sheets",
}

// Applications maps spoken application names to executable identifiers.
// Unknown names fall back to "<name>.exe"-style guessing in the handler.
var Applications = map[string]string{
	"notepad":            "notepad.exe",
	"calculator":         "calc.exe",
	"calc":               "calc.exe",
	"paint":              "mspaint.exe",
	"cmd":                "cmd.exe",
	"command prompt":     "cmd.exe",
	"powershell":         "powershell.exe",
	"task manager":       "taskmgr.exe",
	"file explorer":      "explorer.exe",
	"explorer":           "explorer.exe",
	"control panel":      "control.exe",
	"settings":           "ms-settings:",
	"chrome":             "chrome.exe",
	"firefox":            "firefox.exe",
	"edge":               "msedge.exe",
	"word":               "winword.exe",
	"excel":              "excel.exe",
	"powerpoint":         "powerpnt.exe",
	"outlook":            "outlook.exe",
	"vs code":            "code.exe",
	"visual studio code": "code.exe",
	"code":               "code.exe",
	"spotify":            "spotify.exe",
	"discord":            "discord.exe",
	"steam":              "steam.exe",
}

// SearchTemplates maps a platform to its URL-encoded search template; {}
// is substituted with the encoded query.
var SearchTemplates = map[string]string{
	"youtube":       "https://www.youtube.com/results?search_query={}",
	"google":        "https://www.google.com/search?q={}",
	"wikipedia":     "https://en.wikipedia.org/wiki/{}",
	"github":        "https://github.com/search?q={}",
	"stackoverflow": "https://stackoverflow.com/search?q={}",
	"reddit":        "https://www.reddit.com/search/?q={}",
	"amazon":        "https://www.amazon.com/s?k={}",
	"netflix":       "https://www.netflix.com/search?q={}",
	"spotify":       "https://open.spotify.com/search/{}",
	"twitter":       "https://twitter.com/search?q={}",
	"instagram":     "https://www.instagram.com/explore/tags/{}/",
	"linkedin":      "https://www.linkedin.com/search/results/all/?keywords={}",
	"maps":          "https://www.google.com/maps/search/{}",
	"facebook":      "https://www.facebook.com/search/top?q={}",
}
