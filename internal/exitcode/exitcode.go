package exitcode

const (
	Success         = 0
	UsageError      = 1
	LoadError       = 2
	ValidationError = 3
	WriteError      = 4
	DBConnError     = 5
	CopyError       = 6
)
