package va

// Profile identifies a codec profile. ProfileNone is the pseudo profile
// carrying video processing entry points.
type Profile int32

const (
	ProfileNone                    Profile = -1
	ProfileMPEG2Simple             Profile = 0
	ProfileMPEG2Main               Profile = 1
	ProfileMPEG4Simple             Profile = 2
	ProfileMPEG4AdvancedSimple     Profile = 3
	ProfileMPEG4Main               Profile = 4
	ProfileH264Baseline            Profile = 5
	ProfileH264Main                Profile = 6
	ProfileH264High                Profile = 7
	ProfileVC1Simple               Profile = 8
	ProfileVC1Main                 Profile = 9
	ProfileVC1Advanced             Profile = 10
	ProfileH263Baseline            Profile = 11
	ProfileJPEGBaseline            Profile = 12
	ProfileH264ConstrainedBaseline Profile = 13
	ProfileVP8Version0_3           Profile = 14
	ProfileH264MultiviewHigh       Profile = 15
	ProfileH264StereoHigh          Profile = 16
	ProfileHEVCMain                Profile = 17
	ProfileHEVCMain10              Profile = 18
	ProfileVP9Profile0             Profile = 19
	ProfileVP9Profile1             Profile = 20
	ProfileVP9Profile2             Profile = 21
	ProfileVP9Profile3             Profile = 22
	ProfileHEVCMain12              Profile = 23
	ProfileHEVCMain422_10          Profile = 24
	ProfileHEVCMain422_12          Profile = 25
	ProfileHEVCMain444             Profile = 26
	ProfileHEVCMain444_10          Profile = 27
	ProfileHEVCMain444_12          Profile = 28
	ProfileHEVCSccMain             Profile = 29
	ProfileHEVCSccMain10           Profile = 30
	ProfileHEVCSccMain444          Profile = 31
	ProfileAV1Profile0             Profile = 32
	ProfileAV1Profile1             Profile = 33
	ProfileHEVCSccMain444_10       Profile = 34
)

var profileDescriptions = []struct {
	profile     Profile
	name        string
	description string
}{
	{ProfileNone, "None", "Video Processing"},
	{ProfileMPEG2Simple, "MPEG2Simple", "MPEG-2 Simple Profile"},
	{ProfileMPEG2Main, "MPEG2Main", "MPEG-2 Main Profile"},
	{ProfileMPEG4Simple, "MPEG4Simple", "MPEG-4 part 2 Simple Profile"},
	{ProfileMPEG4AdvancedSimple, "MPEG4AdvancedSimple", "MPEG-4 part 2 Advanced Simple Profile"},
	{ProfileMPEG4Main, "MPEG4Main", "MPEG-4 part 2 Main Profile"},
	{ProfileH264Baseline, "H264Baseline", "H.264 / MPEG-4 part 10 (AVC) Baseline Profile"},
	{ProfileH264Main, "H264Main", "H.264 / MPEG-4 part 10 (AVC) Main Profile"},
	{ProfileH264High, "H264High", "H.264 / MPEG-4 part 10 (AVC) High Profile"},
	{ProfileVC1Simple, "VC1Simple", "VC-1 / SMPTE 421M / WMV 9 Simple Profile"},
	{ProfileVC1Main, "VC1Main", "VC-1 / SMPTE 421M / WMV 9 Main Profile"},
	{ProfileVC1Advanced, "VC1Advanced", "VC-1 / SMPTE 421M / WMV 9 Advanced Profile"},
	{ProfileH263Baseline, "H263Baseline", "H.263 Baseline Profile"},
	{ProfileJPEGBaseline, "JPEGBaseline", "JPEG / JFIF Baseline Profile"},
	{ProfileH264ConstrainedBaseline, "H264ConstrainedBaseline", "H.264 / MPEG-4 part 10 (AVC) Constrained Baseline Profile"},
	{ProfileVP8Version0_3, "VP8Version0_3", "VP8 profile versions 0-3"},
	{ProfileH264MultiviewHigh, "H264MultiviewHigh", "H.264 / MPEG-4 part 10 (AVC) Multiview High Profile"},
	{ProfileH264StereoHigh, "H264StereoHigh", "H.264 / MPEG-4 part 10 (AVC) Stereo High Profile"},
	{ProfileHEVCMain, "HEVCMain", "H.265 / MPEG-H part 2 (HEVC) Main Profile"},
	{ProfileHEVCMain10, "HEVCMain10", "H.265 / MPEG-H part 2 (HEVC) Main 10 Profile"},
	{ProfileVP9Profile0, "VP9Profile0", "VP9 profile 0 (420, 8-bit)"},
	{ProfileVP9Profile1, "VP9Profile1", "VP9 profile 1 (422/444, 8-bit)"},
	{ProfileVP9Profile2, "VP9Profile2", "VP9 profile 2 (420, 10/12-bit)"},
	{ProfileVP9Profile3, "VP9Profile3", "VP9 profile 3 (422/444, 10/12-bit)"},
	{ProfileHEVCMain12, "HEVCMain12", "H.265 / MPEG-H part 2 (HEVC) Main 12 Profile"},
	{ProfileHEVCMain422_10, "HEVCMain422_10", "H.265 / MPEG-H part 2 (HEVC) Main 4:2:2 10 Profile"},
	{ProfileHEVCMain422_12, "HEVCMain422_12", "H.265 / MPEG-H part 2 (HEVC) Main 4:2:2 12 Profile"},
	{ProfileHEVCMain444, "HEVCMain444", "H.265 / MPEG-H part 2 (HEVC) Main 4:4:4 Profile"},
	{ProfileHEVCMain444_10, "HEVCMain444_10", "H.265 / MPEG-H part 2 (HEVC) Main 4:4:4 10 Profile"},
	{ProfileHEVCMain444_12, "HEVCMain444_12", "H.265 / MPEG-H part 2 (HEVC) Main 4:4:4 12 Profile"},
	{ProfileHEVCSccMain, "HEVCSccMain", "H.265 / MPEG-H part 2 (HEVC) SCC Main Profile"},
	{ProfileHEVCSccMain10, "HEVCSccMain10", "H.265 / MPEG-H part 2 (HEVC) SCC Main 10 Profile"},
	{ProfileHEVCSccMain444, "HEVCSccMain444", "H.265 / MPEG-H part 2 (HEVC) SCC Main 4:4:4 Profile"},
	{ProfileAV1Profile0, "AV1Profile0", "AV1 Main Profile"},
	{ProfileAV1Profile1, "AV1Profile1", "AV1 High Profile"},
	{ProfileHEVCSccMain444_10, "HEVCSccMain444_10", "H.265 / MPEG-H part 2 (HEVC) SCC Screen-Extended Main 4:4:4 10 Profile"},
}

// Describe returns the mnemonic name and description of a known profile.
func (p Profile) Describe() (name, description string, ok bool) {
	for _, d := range profileDescriptions {
		if d.profile == p {
			return d.name, d.description, true
		}
	}
	return "", "", false
}
