package scpath

const (
	// SourceDir is the name of the repository metadata directory
	SourceDir = ".gitlet"

	// ObjectsDir holds the compressed commit objects
	ObjectsDir = "objects"

	// RefsDir is the name of the refs directory
	RefsDir = "refs"

	// HeadsDir is the name of the heads directory (branches)
	HeadsDir = "heads"

	// HeadFile names the file recording the current branch
	HeadFile = "HEAD"

	// StageFile holds the persisted staging area
	StageFile = "stage"

	// ConfigFile is the repository configuration file
	ConfigFile = "config.yaml"
)
