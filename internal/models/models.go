package models

// User is one registry record mapping a handle embedded in staged
// filenames to a display name. The JSON field names are capitalized for
// compatibility with the CSV-era frontend.
type User struct {
	Name     string `json:"Name" db:"name"`
	Username string `json:"Username" db:"username"`
}

// Account holds the connection secrets of one Reddit account plus the
// subreddit it posts to. Loaded as an immutable snapshot per operation
// and never mutated by the pipeline.
type Account struct {
	Username     string `json:"username" db:"username"`
	ClientID     string `json:"client_id" db:"client_id"`
	ClientSecret string `json:"client_secret" db:"client_secret"`
	Password     string `json:"password" db:"password"`
	UserAgent    string `json:"user_agent" db:"user_agent"`
	Subreddit    string `json:"subreddit" db:"subreddit"`
}

// CandidatePost groups the staged files of one owner. It is derived
// fresh from the staging directory on every listing and has no storage
// of its own.
type CandidatePost struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	TitlePreview string   `json:"titlePreview"`
	Files        []string `json:"files"`
	FileCount    int      `json:"fileCount"`
}

// PublishResult is what a successful publish returns: the permanent
// link on Reddit and the files that were moved to the published area.
// Files that failed the post-submit move stay pending and are absent
// from MovedFiles.
type PublishResult struct {
	Permalink  string
	MovedFiles []string
}

// Flair is one link flair template of the target subreddit.
type Flair struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
