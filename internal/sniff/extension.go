package sniff

// extensionRules are checked in order; the first matching signature decides.
var extensionRules = []struct {
	off int
	sig string
	ext string
}{
	{0, "BNTX\x00\x00\x00\x00", ".bntx"},
	{0, "BNSH\x00\x00\x00\x00", ".bnsh"},
	{0, "MsgStdBn", ".msbt"},
	{0, "MsgPrjBn", ".msbp"},
	{0, "SARC", ".sarc"},
	{0, "Yaz0", ".szs"},
	{0, "Yaz1", ".szs"},
	{0, "FFNT", ".bffnt"},
	{0, "CFNT", ".bcfnt"},
	{0, "CSTM", ".bcstm"},
	{0, "FSTM", ".bfstm"},
	{0, "FSTP", ".bfstp"},
	{0, "CWAV", ".bcwav"},
	{0, "FWAV", ".bfwav"},
	{0, "Gfx2", ".gtx"},
	{0, "FRES", ".bfres"},
	{0, "AAHS", ".sharc"},
	{0, "BAHS", ".sharcfb"},
	{0, "FSHA", ".bfsha"},
	{0, "FLAN", ".bflan"},
	{0, "FLYT", ".bflyt"},
	{0, "CLAN", ".bclan"},
	{0, "CLYT", ".bclyt"},
	{0, "CTPK", ".ctpk"},
	{0, "CGFX", ".bcres"},
	{0, "AAMP", ".aamp"},
	{0, "\x28\xB5\x2F\xFD", ".zs"},
	{0xC, "SCDL", ".bcd"},
	{0, "YB", ".byml"},
	{0, "BY", ".byml"},
}

// Extension guesses a file extension (with leading dot) from data's
// signature. Unknown payloads report ".bin".
func Extension(data []byte) string {
	for _, r := range extensionRules {
		end := r.off + len(r.sig)
		if end <= len(data) && string(data[r.off:end]) == r.sig {
			return r.ext
		}
	}
	if r := (rule{tail, trailerOffset, []string{"FLIM"}, 0}); r.match(data) {
		return ".bflim"
	}
	if r := (rule{tail, trailerOffset, []string{"CLIM"}, 0}); r.match(data) {
		return ".bclim"
	}
	return ".bin"
}

// yaz0PayloadOffset is where the first literal bytes of a Yaz0 stream sit
// when its first flag byte marks them as literals.
const yaz0PayloadOffset = 0x11

// IsArchive reports whether data is a SARC archive, either raw or wrapped in
// a Yaz0/Yaz1 stream whose first decoded bytes are the SARC magic.
func IsArchive(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "SARC":
		return true
	case "Yaz0", "Yaz1":
		end := yaz0PayloadOffset + 4
		return len(data) >= end && string(data[yaz0PayloadOffset:end]) == "SARC"
	}
	return false
}
