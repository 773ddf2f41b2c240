// Package sarc reads and writes SARC archives: a flat table of named byte
// blobs laid out deterministically so that a serialized archive is
// reproducible bit for bit.
//
// # Reading
//
//	a, err := sarc.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for _, e := range a.Entries() {
//	    fmt.Println(e.Name, len(e.Data))
//	}
//
// Parse expects an unwrapped container. [Load] first strips Yaz0 or zstd
// framing when present, and [Open] maps a file from disk.
//
// # Writing
//
//	a := sarc.New()
//	_ = a.Add("Layout/Main.bflyt", layout)
//	_ = a.Add("Timg/Icon.bflim", icon)
//	out, err := a.Bytes()
//
// Entries are serialized in ascending order of their name hash. Each entry's
// data starts on the power-of-two boundary its content signature requires
// (nested archives on 0x2000, GPU resources on 0x1000, ...), never less than
// the configured default alignment.
//
// # Folders
//
// Names are "/"-separated logical paths. [Archive.Tree] projects them into a
// read-only folder hierarchy; [Tree] can also be built by hand and flattened
// back into an archive with [Archive.AddTree]. The flat name table stays the
// source of truth.
//
// # Concurrency
//
// An Archive is not safe for concurrent mutation. Independent archives may
// be used from different goroutines without locking.
package sarc
