package errors

const (
	// input err
	ErrCLIOpenInput = 1101
	ErrCLIReadInput = 1102
	ErrCLIHashInput = 1103

	// checksum verification err
	ErrCLIOpenChecksumFile = 1201
	ErrCLIBadChecksumLine  = 1202
	ErrCLIDecodeDigest     = 1203
	ErrCLIDigestMismatch   = 1204

	// other err
	ErrCLIUnknownErr = 1301
)

var ErrCode = map[uint32]string{

	ErrCLIOpenInput:        "Failed to open input",
	ErrCLIReadInput:        "Failed to read input",
	ErrCLIHashInput:        "Failed to hash input",
	ErrCLIOpenChecksumFile: "Failed to open checksum file",
	ErrCLIBadChecksumLine:  "Malformed checksum line",
	ErrCLIDecodeDigest:     "Argument must be hexadecimal digest string",
	ErrCLIDigestMismatch:   "Computed digest does not match",
	ErrCLIUnknownErr:       "Unknown error",
}
