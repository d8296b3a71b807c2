package janitor

const (
	defaultParallelism = 4

	scopeGroup    = "group"
	scopeResource = "resource"

	// pingerName is how the janitor shows up in health statistics.
	pingerName = "janitor"
)
