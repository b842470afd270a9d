package model

// ApplyStats records what applying one change file did to the running text.
type ApplyStats struct {
	ChangeFile Path `yaml:"change_file"`
	Sections   int  `yaml:"sections"`
	Removed    int  `yaml:"removed"`
	Added      int  `yaml:"added"`
}
