// Package format houses low-level decoders and encoders for the SARC
// container format. The goal is to keep the parsing focused, allocation-free
// where possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// A SARC file is laid out as follows (all integers in the byte order named
// by the BOM):
//
//	Offset           Size      Description
//	---------------  --------  ------------------------------------------
//	0x00             0x14      SARC container header
//	0x14             0x0C      SFAT header
//	0x20             0x10 * N  SFAT nodes (hash, name id, data begin, end)
//	0x20 + 0x10 * N  0x08      SFNT header
//	...              var       NUL-terminated names, each padded to 4 bytes
//	dataOffset       var       entry data, each aligned per entry
package format

var (
	// SARCSignature is the four-byte signature at the start of every archive.
	SARCSignature = []byte{'S', 'A', 'R', 'C'}

	// SFATSignature identifies the file allocation table header.
	SFATSignature = []byte{'S', 'F', 'A', 'T'}

	// SFNTSignature identifies the file name table header.
	SFNTSignature = []byte{'S', 'F', 'N', 'T'}

	// BOMLittle and BOMBig are the raw byte-order-mark patterns at 0x06.
	BOMLittle = []byte{0xFF, 0xFE}
	BOMBig    = []byte{0xFE, 0xFF}
)

const (
	// SignatureSize is the length of every section magic.
	SignatureSize = 4

	// SARCHeaderSize is the fixed size of the container header.
	SARCHeaderSize = 0x14

	// SFATHeaderSize is the fixed size of the SFAT header.
	SFATHeaderSize = 0x0C

	// SFATNodeSize is the size of a single SFAT node record.
	SFATNodeSize = 0x10

	// SFNTHeaderSize is the fixed size of the SFNT header.
	SFNTHeaderSize = 0x08

	// Version is the only supported container version.
	Version = 0x0100

	// ByteOrderMark is the BOM value as written with the archive's byte order.
	ByteOrderMark = 0xFEFF

	// MaxNodeCount is the largest node count representable in the 14-bit field.
	MaxNodeCount = 0x3FFF

	// NodeCountInvalidMask selects the bits that must be clear in a node count.
	NodeCountInvalidMask = 0xFFFFC000

	// NameOffsetMask selects the 24-bit name table word offset from a name id.
	NameOffsetMask = 0x00FFFFFF

	// NameFlagShift is the bit position of the has-filename flag byte.
	NameFlagShift = 24

	// HasFilenameFlag marks a node whose name is stored in the SFNT table.
	HasFilenameFlag = 0x01000000

	// NameAlignment is the alignment of every name in the SFNT table.
	NameAlignment = 4

	// DataOffsetMinAlignment is the minimum alignment of the data region start.
	DataOffsetMinAlignment = 4

	// DefaultHashMultiplier is the multiplier used by every retail archive.
	DefaultHashMultiplier = 0x65

	// DefaultAlignment is the default per-entry data alignment.
	DefaultAlignment = 4
)

// SARC header field offsets.
const (
	SARCMagicOffset      = 0x00
	SARCHeaderSizeOffset = 0x04
	SARCBOMOffset        = 0x06
	SARCFileSizeOffset   = 0x08
	SARCDataOffsetOffset = 0x0C
	SARCVersionOffset    = 0x10
	SARCReservedOffset   = 0x12
)

// SFAT header field offsets, relative to the SFAT header.
const (
	SFATMagicOffset          = 0x00
	SFATHeaderSizeOffset     = 0x04
	SFATNodeCountOffset      = 0x06
	SFATHashMultiplierOffset = 0x08
)

// SFAT node field offsets, relative to the node.
const (
	NodeHashOffset      = 0x00
	NodeNameIDOffset    = 0x04
	NodeDataBeginOffset = 0x08
	NodeDataEndOffset   = 0x0C
)

// SFNT header field offsets, relative to the SFNT header.
const (
	SFNTMagicOffset      = 0x00
	SFNTHeaderSizeOffset = 0x04
	SFNTReservedOffset   = 0x06
)

// SFATOffset is the absolute offset of the SFAT header.
const SFATOffset = SARCHeaderSize

// NodeTableOffset is the absolute offset of the first SFAT node.
const NodeTableOffset = SARCHeaderSize + SFATHeaderSize
