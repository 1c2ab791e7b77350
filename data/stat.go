package data

// MaxContentsSize bounds the backing contents of one entry, in bytes.
const MaxContentsSize = 16 << 20

// StatFs is the synthetic capacity information reported for the mount.
// None of the figures relate to real storage.
type StatFs struct {
	BlockSize       uint32 `json:"block_size"`
	Blocks          uint64 `json:"blocks"`
	BlocksFree      uint64 `json:"blocks_free"`
	BlocksAvailable uint64 `json:"blocks_available"`
	NameLength      uint32 `json:"name_length"`
}

// NewStatFs returns the fixed figures reported by every mount.
func NewStatFs() *StatFs {
	return &StatFs{
		BlockSize:       512,
		Blocks:          4096,
		BlocksFree:      2048,
		BlocksAvailable: 2048,
		NameLength:      255,
	}
}
