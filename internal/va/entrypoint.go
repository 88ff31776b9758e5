package va

// Entrypoint identifies an operation mode within a profile.
type Entrypoint int32

const (
	EntrypointVLD              Entrypoint = 1
	EntrypointIZZ              Entrypoint = 2
	EntrypointIDCT             Entrypoint = 3
	EntrypointMoComp           Entrypoint = 4
	EntrypointDeblocking       Entrypoint = 5
	EntrypointEncSlice         Entrypoint = 6
	EntrypointEncPicture       Entrypoint = 7
	EntrypointEncSliceLP       Entrypoint = 8
	EntrypointVideoProc        Entrypoint = 10
	EntrypointFEI              Entrypoint = 11
	EntrypointStats            Entrypoint = 12
	EntrypointProtectedTEEComm Entrypoint = 13
	EntrypointProtectedContent Entrypoint = 14
)

var entrypointDescriptions = []struct {
	entrypoint  Entrypoint
	name        string
	description string
}{
	{EntrypointVLD, "VLD", "Decode Slice"},
	{EntrypointIZZ, "IZZ", "(Legacy) ZigZag Scan"},
	{EntrypointIDCT, "IDCT", "(Legacy) Inverse DCT"},
	{EntrypointMoComp, "MoComp", "(Legacy) Motion Compensation"},
	{EntrypointDeblocking, "Deblocking", "(Legacy) Deblocking"},
	{EntrypointEncSlice, "EncSlice", "Encode Slice"},
	{EntrypointEncPicture, "EncPicture", "Encode Picture"},
	{EntrypointEncSliceLP, "EncSliceLP", "Encode Slice (Low Power)"},
	{EntrypointVideoProc, "VideoProc", "Video Processing"},
	{EntrypointFEI, "FEI", "Flexible Encode"},
	{EntrypointStats, "Stats", "Stats"},
	{EntrypointProtectedTEEComm, "ProtectedTEEComm", "Communicate with Trusted Execution Environment"},
	{EntrypointProtectedContent, "ProtectedContent", "Decrypt Protected Content"},
}

// Describe returns the mnemonic name and description of a known entry point.
func (e Entrypoint) Describe() (name, description string, ok bool) {
	for _, d := range entrypointDescriptions {
		if d.entrypoint == e {
			return d.name, d.description, true
		}
	}
	return "", "", false
}
