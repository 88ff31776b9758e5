package va

// FlagName pairs a bitmask flag with its report label. Tables of FlagName
// are ordered the way matching labels appear in reports.
type FlagName struct {
	Flag uint32
	Name string
}

// ValueName pairs an enumerant value with its report label.
type ValueName struct {
	Value int32
	Name  string
}
