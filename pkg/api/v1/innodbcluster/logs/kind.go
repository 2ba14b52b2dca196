package logs

// Kind enumerates the MySQL server log categories the operator manages. The
// values must correspond to the field names in the InnoDBCluster CRD.
type Kind string

const (
	ErrorKind     Kind = "error"
	GeneralKind   Kind = "general"
	SlowQueryKind Kind = "slowQuery"
)
